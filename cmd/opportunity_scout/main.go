// Package main provides the entry point for the Opportunity Scout CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "opportunity_scout",
	Short: "Income opportunity discovery and ranking",
	Long:  "Opportunity Scout searches configured opportunity sources, scores candidates against a skill and lifestyle profile, and ranks them into actionable categories.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
