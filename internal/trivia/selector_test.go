package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poolOf(ids ...int64) []Question {
	pool := make([]Question, len(ids))
	for i, id := range ids {
		pool[i] = Question{ID: id, Question: "q", Answer: "a", Category: 1, Difficulty: 1}
	}
	return pool
}

// sequence replays fixed draws, repeating the last one.
func sequence(draws ...int) IntN {
	i := 0
	return func(n int) int {
		d := draws[min(i, len(draws)-1)]
		i++
		return d % n
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, StrategyUnseen, s)

	s, err = ParseStrategy("rejection")
	require.NoError(t, err)
	assert.Equal(t, StrategyRejection, s)

	_, err = ParseStrategy("roulette")
	assert.Error(t, err)
}

func TestNextQuestionEmptyPool(t *testing.T) {
	for _, strategy := range []Strategy{StrategyUnseen, StrategyRejection} {
		_, ok := NextQuestion(nil, nil, strategy, seededIntN(1))
		assert.False(t, ok, strategy)
	}
}

func TestNextQuestionAllSeen(t *testing.T) {
	pool := poolOf(1, 2, 3)
	seen := NewIDSet(1, 2, 3)
	for _, strategy := range []Strategy{StrategyUnseen, StrategyRejection} {
		_, ok := NextQuestion(pool, seen, strategy, seededIntN(1))
		assert.False(t, ok, strategy)
	}
}

func TestNextQuestionNeverRepeats(t *testing.T) {
	pool := poolOf(10, 20, 30, 40, 50, 60)
	for _, strategy := range []Strategy{StrategyUnseen, StrategyRejection} {
		intn := seededIntN(7)
		for range 200 {
			seen := NewIDSet(10, 30, 50)
			q, ok := NextQuestion(pool, seen, strategy, intn)
			if !ok {
				continue
			}
			assert.False(t, seen.Has(q.ID), "%s served previous question %d", strategy, q.ID)
		}
	}
}

func TestUnseenFindsLastQuestion(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5, 6, 7, 8)
	seen := NewIDSet(1, 2, 3, 4, 5, 7, 8)
	for seed := range uint64(50) {
		q, ok := NextQuestion(pool, seen, StrategyUnseen, seededIntN(seed))
		require.True(t, ok)
		assert.Equal(t, int64(6), q.ID)
	}
}

func TestUnseenIsUniform(t *testing.T) {
	pool := poolOf(1, 2, 3, 4)
	seen := NewIDSet(1)
	counts := map[int64]int{}
	intn := seededIntN(3)
	for range 3000 {
		q, ok := NextQuestion(pool, seen, StrategyUnseen, intn)
		require.True(t, ok)
		counts[q.ID]++
	}
	assert.Zero(t, counts[1])
	for _, id := range []int64{2, 3, 4} {
		assert.InDelta(t, 1000, counts[id], 150, "id %d", id)
	}
}

func TestRejectionCanGiveUpEarly(t *testing.T) {
	pool := poolOf(1, 2, 3, 4)
	seen := NewIDSet(1, 2, 3)

	// Every draw lands on question 1, so four attempts fail although 4 is unseen.
	_, ok := NextQuestion(pool, seen, StrategyRejection, sequence(0))
	assert.False(t, ok)

	q, ok := NextQuestion(pool, seen, StrategyRejection, sequence(0, 1, 3))
	require.True(t, ok)
	assert.Equal(t, int64(4), q.ID)

	_, ok = NextQuestion(pool, seen, StrategyUnseen, sequence(0))
	assert.True(t, ok, "unseen never reports a false exhaustion")
}

func TestRejectionSucceedsUsually(t *testing.T) {
	pool := poolOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	seen := NewIDSet(1, 2, 3, 4, 5, 6, 7, 8, 9)
	intn := seededIntN(11)

	served := 0
	const rounds = 2000
	for range rounds {
		if q, ok := NextQuestion(pool, seen, StrategyRejection, intn); ok {
			assert.Equal(t, int64(10), q.ID)
			served++
		}
	}
	// Success probability is 1 - 0.9^10, about 0.65.
	assert.InDelta(t, 0.65, float64(served)/rounds, 0.05)
}
