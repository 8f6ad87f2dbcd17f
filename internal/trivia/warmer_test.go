package trivia

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheWarmerFillsCache(t *testing.T) {
	questions, categories := newFixture()
	cache := &memoryCache{}
	svc := newTestService(questions, categories, cache, StrategyUnseen)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := NewCacheWarmer(svc, 10*time.Millisecond, zerolog.New(io.Discard)).Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.GreaterOrEqual(t, cache.sets, 1)
	assert.Len(t, cache.cats, 6)

	payload, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, payload.TotalCategories)
}

func TestCacheWarmerWithoutCache(t *testing.T) {
	questions, categories := newFixture()
	svc := newTestService(questions, categories, nil, StrategyUnseen)

	err := NewCacheWarmer(svc, time.Millisecond, zerolog.New(io.Discard)).Run(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, categories.listCalls)
}
