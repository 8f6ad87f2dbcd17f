package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/gokatarajesh/trivia-api/internal/db/backend"
	"github.com/gokatarajesh/trivia-api/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import questions from external sources",
}

var importOpenTDBCmd = &cobra.Command{
	Use:   "opentdb",
	Short: "Import questions from the Open Trivia DB",
	Args:  cobra.NoArgs,
	RunE:  runImportOpenTDB,
}

func init() {
	importOpenTDBCmd.Flags().Int("amount", 10, "Number of questions to fetch (OpenTDB caps a request at 50)")
	importOpenTDBCmd.Flags().String("difficulty", "", "Only fetch easy, medium or hard questions")
	importOpenTDBCmd.Flags().String("base-url", "", "Override the OpenTDB base URL")
	importOpenTDBCmd.Flags().Duration("timeout", 10*time.Second, "HTTP timeout for the OpenTDB request")

	importCmd.AddCommand(importOpenTDBCmd)
}

func runImportOpenTDB(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	amount, _ := cmd.Flags().GetInt("amount")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	be, err := backend.Open(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer be.Close()

	client := importer.NewOpenTDBClient(baseURL, &http.Client{Timeout: timeout})
	res, err := importer.New(client, be.Categories, be.Questions, logger).Run(cmd.Context(), amount, difficulty)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d questions (%d skipped)\n", res.Imported, res.Fetched, res.Skipped)
	return nil
}
