package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pillgood/backend/internal/config"
	"github.com/pillgood/backend/internal/db"
	"github.com/pillgood/backend/internal/fixtures"
)

var loadPillsCmd = &cobra.Command{
	Use:   "loadpills <fixture.json>",
	Short: "Load registry fixture data into the catalog",
	Long: `Validate a health-food registry JSON dump and upsert its products,
ingredients, and allergens. Each product's category is inferred by majority
vote of its functional ingredients.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoadPills,
}

func init() {
	rootCmd.AddCommand(loadPillsCmd)
}

func runLoadPills(cmd *cobra.Command, args []string) error {
	app, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	items, err := fixtures.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid fixture: %w", err)
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, app.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	summary, err := fixtures.NewLoader(database).Load(ctx, items)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	cmd.Printf("Load complete: %d items, %d loaded, %d failed\n",
		summary.Total, summary.Loaded, summary.Failed)
	return nil
}
