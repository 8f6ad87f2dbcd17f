package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/db/migrations"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect Postgres migrations",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().String("dir", "", "Directory containing migration files (defaults to the embedded set)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Store.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations target postgres; STORE_DRIVER is %q (sqlite applies its schema on open)", cfg.Store.Driver)
	}

	migrationDir := "."
	goose.SetBaseFS(migrations.FS)
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		migrationDir, err = filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve migration directory: %w", err)
		}
		if _, err := os.Stat(migrationDir); os.IsNotExist(err) {
			return fmt.Errorf("migration directory %s does not exist", migrationDir)
		}
		goose.SetBaseFS(nil)
	}

	// pgx via stdlib keeps goose on database/sql.
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(cmd.Context()); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	logger.Info().
		Str("host", cfg.Postgres.Host).
		Int("port", cfg.Postgres.Port).
		Str("database", cfg.Postgres.Database).
		Str("migration_dir", migrationDir).
		Msg("connected to database")

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	goose.SetTableName("goose_db_version")

	switch args[0] {
	case "up":
		if err := goose.UpContext(cmd.Context(), db, migrationDir); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		logger.Info().Msg("migrations applied successfully")
	case "down":
		if err := goose.DownContext(cmd.Context(), db, migrationDir); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info().Msg("migrations rolled back successfully")
	case "status":
		if err := goose.StatusContext(cmd.Context(), db, migrationDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	}
	return nil
}
