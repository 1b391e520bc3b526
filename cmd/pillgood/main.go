// Package main provides the entry point for the pillgood backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pillgood",
	Short: "Pillgood health supplement API server",
	Long:  "Pillgood serves the health supplement catalog, pill cabinet, community, and recommendation chatbot over REST, plus batch jobs for loading registry data and backfilling purchase links.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
