package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/opportunity-scout/internal/popularity"
)

var engagementCmd = &cobra.Command{
	Use:   "engagement",
	Short: "Record an engagement score for an opportunity",
	Long:  "Record an engagement score (0-100) for an opportunity id in the engagement database. The discover command blends these scores into its ranking.",
	RunE:  runEngagement,
}

var (
	engagementDatabaseURL string
	engagementID          string
	engagementScore       int
)

func init() {
	engagementCmd.Flags().StringVar(&engagementDatabaseURL, "db-url", "", "Postgres URL for the engagement database (overrides DATABASE_URL)")
	engagementCmd.Flags().StringVar(&engagementID, "id", "", "Opportunity id, as printed by the discover command")
	engagementCmd.Flags().IntVar(&engagementScore, "score", -1, "Engagement score between 0 and 100")

	rootCmd.AddCommand(engagementCmd)
}

func runEngagement(_ *cobra.Command, _ []string) error {
	databaseURL, id, score := engagementDatabaseURL, engagementID, engagementScore
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if err := validateEngagementArgs(databaseURL, id, score); err != nil {
		return err
	}

	ctx := context.Background()
	source, err := popularity.ConnectPG(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect engagement database: %w", err)
	}
	defer source.Close()

	if err := source.RecordEngagement(ctx, id, score); err != nil {
		return err
	}
	fmt.Printf("Recorded engagement %d for %s\n", score, id)
	return nil
}

func validateEngagementArgs(databaseURL, id string, score int) error {
	if id == "" {
		return fmt.Errorf("must provide --id")
	}
	if score < 0 || score > 100 {
		return fmt.Errorf("--score must be between 0 and 100")
	}
	if databaseURL == "" {
		return fmt.Errorf("must provide --db-url or set DATABASE_URL")
	}
	return nil
}
