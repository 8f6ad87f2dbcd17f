package trivia

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

var errStoreDown = errors.New("store unavailable")

// memQuestions is an in-memory QuestionRepository with the same semantics as the SQL stores.
type memQuestions struct {
	mu         sync.Mutex
	rows       []db.Question
	categories map[int64]bool
	nextID     int64
	err        error
}

func (m *memQuestions) List(_ context.Context) ([]db.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]db.Question(nil), m.rows...), nil
}

func (m *memQuestions) ListByCategory(_ context.Context, categoryID int64) ([]db.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []db.Question
	for _, q := range m.rows {
		if q.Category == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestions) Get(_ context.Context, id int64) (db.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return db.Question{}, m.err
	}
	for _, q := range m.rows {
		if q.ID == id {
			return q, nil
		}
	}
	return db.Question{}, fmt.Errorf("question %d: %w", id, repository.ErrNotFound)
}

func (m *memQuestions) Insert(_ context.Context, params db.InsertQuestionParams) (db.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return db.Question{}, m.err
	}
	if !m.categories[params.Category] {
		return db.Question{}, errors.New("foreign key constraint failed")
	}
	m.nextID++
	q := db.Question{
		ID:         m.nextID,
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	m.rows = append(m.rows, q)
	return q, nil
}

func (m *memQuestions) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, q := range m.rows {
		if q.ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("question %d: %w", id, repository.ErrNotFound)
}

type memCategories struct {
	rows      []db.Category
	listCalls int
	err       error
}

func (m *memCategories) List(_ context.Context) ([]db.Category, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

func (m *memCategories) Get(_ context.Context, id int64) (db.Category, error) {
	if m.err != nil {
		return db.Category{}, m.err
	}
	for _, c := range m.rows {
		if c.ID == id {
			return c, nil
		}
	}
	return db.Category{}, fmt.Errorf("category %d: %w", id, repository.ErrNotFound)
}

type memoryCache struct {
	cats []Category
	sets int
}

func (c *memoryCache) Get(_ context.Context) ([]Category, error) {
	return c.cats, nil
}

func (c *memoryCache) Set(_ context.Context, categories []Category) error {
	c.sets++
	c.cats = categories
	return nil
}

var seedCategories = []db.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// newFixture seeds four questions per category: ids 1-24, category (id-1)/4+1.
func newFixture() (*memQuestions, *memCategories) {
	questions := &memQuestions{categories: map[int64]bool{}}
	for _, c := range seedCategories {
		questions.categories[c.ID] = true
	}
	for i := int64(1); i <= 24; i++ {
		questions.rows = append(questions.rows, db.Question{
			ID:         i,
			Question:   fmt.Sprintf("Question number %d?", i),
			Answer:     fmt.Sprintf("Answer %d", i),
			Category:   (i-1)/4 + 1,
			Difficulty: int32(i%5 + 1),
		})
	}
	questions.nextID = 24
	return questions, &memCategories{rows: seedCategories}
}

func seededIntN(seed uint64) IntN {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)).IntN
}

func newTestService(questions *memQuestions, categories *memCategories, cache CategoryCache, strategy Strategy) *Service {
	return NewService(questions, categories, cache, ServiceOptions{
		Strategy: strategy,
		IntN:     seededIntN(42),
	}, zerolog.New(io.Discard))
}
