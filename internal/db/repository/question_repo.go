package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

// ErrNotFound is returned when the referenced row does not exist.
var ErrNotFound = errors.New("not found")

type questionStore interface {
	ListQuestions(ctx context.Context) ([]db.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error)
	GetQuestion(ctx context.Context, id int64) (db.Question, error)
	InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error)
	DeleteQuestion(ctx context.Context, id int64) (int64, error)
}

// QuestionRepository wraps store queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]db.Question, error) {
	return r.store.ListQuestions(ctx)
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	return r.store.ListQuestionsByCategory(ctx, categoryID)
}

func (r *QuestionRepository) Get(ctx context.Context, id int64) (db.Question, error) {
	q, err := r.store.GetQuestion(ctx, id)
	if errors.Is(err, db.ErrNoRows) {
		return db.Question{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	return q, err
}

func (r *QuestionRepository) Insert(ctx context.Context, params db.InsertQuestionParams) (db.Question, error) {
	return r.store.InsertQuestion(ctx, params)
}

// Delete removes a question, reporting ErrNotFound when nothing was deleted.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	return nil
}
