package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]db.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]db.Category), args.Error(1)
}

func (m *mockCategoryStore) GetCategory(ctx context.Context, id int64) (db.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Category), args.Error(1)
}

func TestCategoryRepository(t *testing.T) {
	store := new(mockCategoryStore)
	repo := NewCategoryRepository(store)

	cats := []db.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	store.On("ListCategories", mock.Anything).Return(cats, nil)
	store.On("GetCategory", mock.Anything, int64(2)).Return(cats[1], nil)
	store.On("GetCategory", mock.Anything, int64(9)).Return(db.Category{}, db.ErrNoRows)

	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cats, got)

	art, err := repo.Get(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, "Art", art.Type)

	_, err = repo.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}
