// Package backend opens the configured relational store and wraps it in repositories.
package backend

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/postgres"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/db/sqlite"
)

// Backend bundles the repositories of one store together with its lifecycle hooks.
type Backend struct {
	Driver     string
	Questions  *repository.QuestionRepository
	Categories *repository.CategoryRepository

	ping  func(ctx context.Context) error
	close func()
}

// Open connects to the store selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.App, logger zerolog.Logger) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("parse postgres config: %w", err)
		}
		if cfg.Postgres.MaxConns > 0 {
			poolCfg.MaxConns = int32(cfg.Postgres.MaxConns)
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.Info().
			Str("host", cfg.Postgres.Host).
			Int("port", cfg.Postgres.Port).
			Str("database", cfg.Postgres.Database).
			Msg("postgres pool created")

		queries := postgres.New(pool)
		return &Backend{
			Driver:     config.DriverPostgres,
			Questions:  repository.NewQuestionRepository(queries),
			Categories: repository.NewCategoryRepository(queries),
			ping:       pool.Ping,
			close:      pool.Close,
		}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Store.SQLitePath).Msg("sqlite store opened")
		return FromSQLite(store, logger), nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// FromSQLite wraps an already opened SQLite store.
func FromSQLite(store *sqlite.Store, logger zerolog.Logger) *Backend {
	return &Backend{
		Driver:     config.DriverSQLite,
		Questions:  repository.NewQuestionRepository(store),
		Categories: repository.NewCategoryRepository(store),
		ping:       store.Ping,
		close: func() {
			if err := store.Close(); err != nil {
				logger.Error().Err(err).Msg("sqlite close error")
			}
		},
	}
}

// Ping checks the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the underlying connections.
func (b *Backend) Close() {
	b.close()
}
