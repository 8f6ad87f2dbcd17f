// Package importer seeds the question bank from the Open Trivia DB.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db"
)

// Fetcher returns external questions.
type Fetcher interface {
	Fetch(ctx context.Context, amount int, difficulty string) ([]OpenTDBQuestion, error)
}

type categoryLister interface {
	List(ctx context.Context) ([]db.Category, error)
}

type questionInserter interface {
	Insert(ctx context.Context, params db.InsertQuestionParams) (db.Question, error)
}

// OpenTDB category names are folded onto the local labels by prefix.
var categoryPrefixes = []struct {
	prefix string
	local  string
}{
	{"Science", "Science"},
	{"Entertainment", "Entertainment"},
	{"Art", "Art"},
	{"Celebrities", "Entertainment"},
	{"Geography", "Geography"},
	{"History", "History"},
	{"Politics", "History"},
	{"Sports", "Sports"},
}

var difficulties = map[string]int32{
	"easy":   1,
	"medium": 2,
	"hard":   3,
}

// Result summarizes one import run.
type Result struct {
	Fetched  int
	Imported int
	Skipped  int
}

type Importer struct {
	fetcher    Fetcher
	categories categoryLister
	questions  questionInserter
	logger     zerolog.Logger
}

func New(fetcher Fetcher, categories categoryLister, questions questionInserter, logger zerolog.Logger) *Importer {
	return &Importer{
		fetcher:    fetcher,
		categories: categories,
		questions:  questions,
		logger:     logger.With().Str("component", "opentdb_importer").Logger(),
	}
}

// Run fetches amount questions and inserts those that map onto a local category.
func (im *Importer) Run(ctx context.Context, amount int, difficulty string) (Result, error) {
	if amount <= 0 {
		return Result{}, fmt.Errorf("amount must be positive, got %d", amount)
	}
	if difficulty != "" {
		if _, ok := difficulties[difficulty]; !ok {
			return Result{}, fmt.Errorf("unknown difficulty %q", difficulty)
		}
	}

	cats, err := im.categories.List(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list categories: %w", err)
	}
	byType := make(map[string]int64, len(cats))
	for _, c := range cats {
		byType[strings.ToLower(c.Type)] = c.ID
	}

	fetched, err := im.fetcher.Fetch(ctx, amount, difficulty)
	if err != nil {
		return Result{}, fmt.Errorf("fetch opentdb: %w", err)
	}

	res := Result{Fetched: len(fetched)}
	for _, q := range fetched {
		params, ok := toInsertParams(q, byType)
		if !ok {
			im.logger.Debug().Str("category", q.Category).Msg("skipping question without local category")
			res.Skipped++
			continue
		}
		if _, err := im.questions.Insert(ctx, params); err != nil {
			return res, fmt.Errorf("insert question: %w", err)
		}
		res.Imported++
	}

	im.logger.Info().
		Int("fetched", res.Fetched).
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Msg("opentdb import finished")
	return res, nil
}

func toInsertParams(q OpenTDBQuestion, byType map[string]int64) (db.InsertQuestionParams, bool) {
	if strings.TrimSpace(q.Question) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
		return db.InsertQuestionParams{}, false
	}
	difficulty, ok := difficulties[q.Difficulty]
	if !ok {
		return db.InsertQuestionParams{}, false
	}
	for _, p := range categoryPrefixes {
		if !strings.HasPrefix(q.Category, p.prefix) {
			continue
		}
		id, ok := byType[strings.ToLower(p.local)]
		if !ok {
			return db.InsertQuestionParams{}, false
		}
		return db.InsertQuestionParams{
			Question:   q.Question,
			Answer:     q.CorrectAnswer,
			Category:   id,
			Difficulty: difficulty,
		}, true
	}
	return db.InsertQuestionParams{}, false
}
