package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]db.Category, error)
	GetCategory(ctx context.Context, id int64) (db.Category, error)
}

// CategoryRepository exposes read-only category lookups.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) List(ctx context.Context) ([]db.Category, error) {
	return r.store.ListCategories(ctx)
}

func (r *CategoryRepository) Get(ctx context.Context, id int64) (db.Category, error) {
	c, err := r.store.GetCategory(ctx, id)
	if errors.Is(err, db.ErrNoRows) {
		return db.Category{}, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return c, err
}
