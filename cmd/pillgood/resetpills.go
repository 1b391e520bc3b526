package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pillgood/backend/internal/config"
	"github.com/pillgood/backend/internal/db"
)

var resetPillsCmd = &cobra.Command{
	Use:   "resetpills",
	Short: "Put no-seller pills back into the search queue",
	Long: `Clear the no-seller marker from every pill that was searched without
finding a valid purchase link, so the next backfill run retries them.`,
	RunE: runResetPills,
}

func init() {
	rootCmd.AddCommand(resetPillsCmd)
}

func runResetPills(cmd *cobra.Command, _ []string) error {
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

	count, err := database.ResetNotFoundPills(ctx)
	if err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	cmd.Printf("Reset %d pills for re-searching\n", count)
	return nil
}
