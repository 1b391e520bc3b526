package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pillgood/backend/internal/backfill"
	"github.com/pillgood/backend/internal/config"
	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/matching"
	"github.com/pillgood/backend/internal/naver"
)

var backfillConcurrency int

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Fill in purchase links for unsearched pills",
	Long: `Search the Naver shopping API for every pill that has never been searched,
validate the top result against the pill's name and manufacturer, and persist
the purchase link, price, and extracted quantity. Pills with no valid seller
are marked so they are not retried until resetpills.`,
	RunE: runBackfill,
}

func init() {
	backfillCmd.Flags().IntVar(&backfillConcurrency, "concurrency", backfill.DefaultConcurrency, "Number of pills processed in parallel")
	rootCmd.AddCommand(backfillCmd)
}

func runBackfill(cmd *cobra.Command, _ []string) error {
	app, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, app.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	searcher := naver.NewClient(naver.Config{
		ClientID:     app.NaverClientID,
		ClientSecret: app.NaverClientSecret,
	})
	resolver := matching.NewResolver(searcher)

	summary, err := backfill.NewRunner(database, resolver, backfillConcurrency).Run(ctx)
	if err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	cmd.Printf("Backfill complete: %d pills, %d matched, %d without sellers, %d skipped\n",
		summary.Total, summary.Matched, summary.NotFound, summary.Skipped)
	return nil
}
