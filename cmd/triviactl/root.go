package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "triviactl",
	Short:         "Operate the trivia API store",
	Long:          "triviactl applies database migrations and imports questions into the trivia store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("env-file", "configs/.env", "Path to a .env file loaded outside production")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importCmd)
}

// loadConfig reads the optional .env file, then the environment.
func loadConfig(cmd *cobra.Command) (*config.App, zerolog.Logger, error) {
	if os.Getenv("APP_ENV") != "production" {
		path, _ := cmd.Flags().GetString("env-file")
		if err := godotenv.Load(path); err != nil {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}
	cfg, err := config.Load(context.Background())
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	return cfg, logging.New(cfg.Name+"-ctl", cfg.Env), nil
}
