package trivia

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheWarmer periodically reloads the category list into the cache so reads
// rarely fall through to the store.
type CacheWarmer struct {
	svc      *Service
	interval time.Duration
	logger   zerolog.Logger
}

func NewCacheWarmer(svc *Service, interval time.Duration, logger zerolog.Logger) *CacheWarmer {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheWarmer{
		svc:      svc,
		interval: interval,
		logger:   logger.With().Str("component", "category_cache_warmer").Logger(),
	}
}

// Run blocks until context cancellation.
func (w *CacheWarmer) Run(ctx context.Context) error {
	if w.svc == nil || w.svc.cache == nil {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// run immediately
	w.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *CacheWarmer) tick(ctx context.Context) {
	if err := w.svc.RefreshCategories(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("category refresh failed")
		return
	}
	w.logger.Debug().Msg("category cache refreshed")
}
