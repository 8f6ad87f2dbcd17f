package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListQuestions(ctx context.Context) ([]db.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]db.Question), args.Error(1)
}

func (m *mockQuestionStore) ListQuestionsByCategory(ctx context.Context, categoryID int64) ([]db.Question, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]db.Question), args.Error(1)
}

func (m *mockQuestionStore) GetQuestion(ctx context.Context, id int64) (db.Question, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(db.Question), args.Error(1)
}

func (m *mockQuestionStore) InsertQuestion(ctx context.Context, arg db.InsertQuestionParams) (db.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(db.Question), args.Error(1)
}

func (m *mockQuestionStore) DeleteQuestion(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestQuestionRepository_ListAndInsert(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	params := db.InsertQuestionParams{Question: "test", Answer: "test", Category: 1, Difficulty: 1}
	created := db.Question{ID: 7, Question: "test", Answer: "test", Category: 1, Difficulty: 1}
	store.On("InsertQuestion", mock.Anything, params).Return(created, nil)
	store.On("ListQuestions", mock.Anything).Return([]db.Question{created}, nil)
	store.On("ListQuestionsByCategory", mock.Anything, int64(1)).Return([]db.Question{created}, nil)

	got, err := repo.Insert(context.Background(), params)
	assert.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []db.Question{created}, all)

	byCat, err := repo.ListByCategory(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, byCat, 1)
	store.AssertExpectations(t)
}

func TestQuestionRepository_GetMapsNoRows(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("GetQuestion", mock.Anything, int64(100000)).Return(db.Question{}, db.ErrNoRows)

	_, err := repo.Get(context.Background(), 100000)
	assert.True(t, errors.Is(err, ErrNotFound))
	store.AssertExpectations(t)
}

func TestQuestionRepository_Delete(t *testing.T) {
	store := new(mockQuestionStore)
	repo := NewQuestionRepository(store)

	store.On("DeleteQuestion", mock.Anything, int64(1)).Return(int64(1), nil)
	store.On("DeleteQuestion", mock.Anything, int64(2)).Return(int64(0), nil)
	store.On("DeleteQuestion", mock.Anything, int64(3)).Return(int64(0), assert.AnError)

	assert.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrNotFound)

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrNotFound)
	store.AssertExpectations(t)
}
