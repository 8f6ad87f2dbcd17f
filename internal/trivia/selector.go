package trivia

import (
	"fmt"
	"math/rand/v2"
)

// Strategy names how the next quiz question is drawn from the pool.
type Strategy string

const (
	// StrategyUnseen samples uniformly from the questions not served yet and
	// reports exhaustion exactly when none remain.
	StrategyUnseen Strategy = "unseen"
	// StrategyRejection draws from the whole pool with replacement, at most
	// len(pool) times, and gives up if every draw was already served. It can
	// report exhaustion while unseen questions remain.
	StrategyRejection Strategy = "rejection"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyUnseen, StrategyRejection:
		return Strategy(s), nil
	case "":
		return StrategyUnseen, nil
	default:
		return "", fmt.Errorf("unknown quiz sampling strategy %q", s)
	}
}

// IntN returns a uniform integer in [0, n). It must be safe for concurrent use.
type IntN func(n int) int

// DefaultIntN is backed by the goroutine-safe global generator.
var DefaultIntN IntN = rand.IntN

// NextQuestion picks a question from pool whose id is not in previous.
// ok is false when the pool is exhausted.
func NextQuestion(pool []Question, previous IDSet, strategy Strategy, intn IntN) (q Question, ok bool) {
	if len(pool) == 0 {
		return Question{}, false
	}
	if intn == nil {
		intn = DefaultIntN
	}
	if strategy == StrategyRejection {
		return sampleRejection(pool, previous, intn)
	}
	return sampleUnseen(pool, previous, intn)
}

func sampleRejection(pool []Question, previous IDSet, intn IntN) (Question, bool) {
	for range len(pool) {
		candidate := pool[intn(len(pool))]
		if !previous.Has(candidate.ID) {
			return candidate, true
		}
	}
	return Question{}, false
}

func sampleUnseen(pool []Question, previous IDSet, intn IntN) (Question, bool) {
	unseen := make([]int, 0, len(pool))
	for i, q := range pool {
		if !previous.Has(q.ID) {
			unseen = append(unseen, i)
		}
	}
	if len(unseen) == 0 {
		return Question{}, false
	}
	return pool[unseen[intn(len(unseen))]], true
}
