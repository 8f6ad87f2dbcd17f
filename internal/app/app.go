package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/backend"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/server"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
	ws "github.com/gokatarajesh/trivia-api/pkg/http/ws"
)

// Application aggregates shared infrastructure (store, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	backend *backend.Backend
	redis   *redis.Client
	http    *http.Server

	warmer    *trivia.CacheWarmer
	bgCancels []context.CancelFunc
}

// New bootstraps logger, store, optional Redis cache and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Str("store", cfg.Store.Driver).Msg("starting application bootstrap")

	strategy, err := trivia.ParseStrategy(cfg.Quiz.Sampling)
	if err != nil {
		return nil, err
	}

	be, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var (
		redisClient *redis.Client
		cache       trivia.CategoryCache
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		cache = trivia.NewCache(redisClient, cfg.Redis.CacheTTL)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("category cache enabled")
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; category cache disabled")
	}

	triviaSvc := trivia.NewService(be.Questions, be.Categories, cache, trivia.ServiceOptions{
		Strategy:     strategy,
		StoreTimeout: cfg.Store.Timeout,
	}, logger)
	logger.Info().Str("strategy", string(triviaSvc.Strategy())).Msg("quiz sampling configured")

	httpHandler := trivia.NewHTTPHandler(triviaSvc, logger)
	wsHandler := trivia.NewWSHandler(triviaSvc, ws.NewUpgrader(cfg.CORS.AllowedOrigins), logger)

	apiServer := server.NewHTTPServer(cfg, logger, server.Routes{
		Trivia: httpHandler,
		QuizWS: wsHandler.HandleWebSocket,
		Store:  be,
		Redis:  redisClient,
	})

	var warmer *trivia.CacheWarmer
	if cache != nil && cfg.Redis.RefreshInterval > 0 {
		warmer = trivia.NewCacheWarmer(triviaSvc, cfg.Redis.RefreshInterval, logger)
	}

	return &Application{
		cfg:       cfg,
		logger:    logger,
		backend:   be,
		redis:     redisClient,
		http:      apiServer,
		warmer:    warmer,
		bgCancels: make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		runErr = fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.backend.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return runErr
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.warmer != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.warmer.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("category cache warmer stopped")
			}
		}()
	}
}
