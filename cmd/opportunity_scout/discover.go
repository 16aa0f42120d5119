package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/opportunity-scout/internal/cache"
	"github.com/jonathan/opportunity-scout/internal/config"
	"github.com/jonathan/opportunity-scout/internal/engine"
	"github.com/jonathan/opportunity-scout/internal/observability"
	"github.com/jonathan/opportunity-scout/internal/popularity"
	"github.com/jonathan/opportunity-scout/internal/providers"
	"github.com/jonathan/opportunity-scout/internal/schemas"
	"github.com/jonathan/opportunity-scout/internal/types"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Discover and rank income opportunities for a profile",
	Long:  "Discover fans out to every enabled opportunity source, scores the candidates against the given skills, time, risk, and income profile, and prints the ranked result as JSON.",
	RunE:  runDiscover,
}

var (
	discoverConfigFile  string
	discoverSkills      []string
	discoverTime        string
	discoverRisk        string
	discoverIncomeGoal  float64
	discoverWork        string
	discoverInputFile   string
	discoverSchemaFile  string
	discoverVerbose     bool
	discoverRedisURL    string
	discoverDatabaseURL string
	discoverRSSFeeds    []string
	discoverGigBoardURL string
	discoverUseBrowser  bool
)

func init() {
	discoverCmd.Flags().StringVar(&discoverConfigFile, "config", "", "Path to JSON config file (optional)")
	discoverCmd.Flags().StringSliceVar(&discoverSkills, "skills", nil, "Comma-separated skills, e.g. javascript,writing")
	discoverCmd.Flags().StringVar(&discoverTime, "time", "", "Weekly time availability, e.g. '10-20 hours/week'")
	discoverCmd.Flags().StringVar(&discoverRisk, "risk", "medium", "Risk appetite: low, medium, or high")
	discoverCmd.Flags().Float64Var(&discoverIncomeGoal, "income-goal", 0, "Target monthly income in dollars")
	discoverCmd.Flags().StringVar(&discoverWork, "work", "remote", "Work preference: remote, local, or both")
	discoverCmd.Flags().StringVarP(&discoverInputFile, "input", "i", "", "Path to a JSON profile document (overrides the profile flags)")
	discoverCmd.Flags().StringVar(&discoverSchemaFile, "schema", "", "JSON Schema file to validate --input against (defaults to the built-in schema)")
	discoverCmd.Flags().BoolVarP(&discoverVerbose, "verbose", "v", false, "Print formatted summaries alongside the JSON result")
	discoverCmd.Flags().StringVar(&discoverRedisURL, "redis-url", "", "Redis URL for the shared result cache (overrides REDIS_URL)")
	discoverCmd.Flags().StringVar(&discoverDatabaseURL, "db-url", "", "Postgres URL for the engagement source (overrides DATABASE_URL)")
	discoverCmd.Flags().StringArrayVar(&discoverRSSFeeds, "rss-feed", nil, "RSS feed URL for the content-platform source (repeatable)")
	discoverCmd.Flags().StringVar(&discoverGigBoardURL, "gig-board-url", "", "Endpoint for the gig board source")
	discoverCmd.Flags().BoolVar(&discoverUseBrowser, "use-browser", false, "Render the gig board with a headless browser")

	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(discoverConfigFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	input, err := buildInput()
	if err != nil {
		return err
	}

	ctx := context.Background()

	registry, err := buildRegistry(cfg)
	if err != nil {
		return fmt.Errorf("failed to build provider registry: %w", err)
	}

	var opts []engine.Option
	if cfg.RedisURL != "" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to connect result cache: %w", err)
		}
		defer store.Close()
		opts = append(opts, engine.WithStore(store))
	}
	if cfg.DatabaseURL != "" {
		source, err := popularity.ConnectPG(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect engagement source: %w", err)
		}
		defer source.Close()
		opts = append(opts, engine.WithEngagement(source))
	}

	e := engine.New(cfg, registry, opts...)
	defer e.Close()

	printer := observability.NewPrinter(os.Stderr)
	if discoverVerbose {
		printer.PrintDiscoveryInput(input)
	}

	result, err := e.Discover(ctx, input)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if discoverVerbose {
		printer.PrintRankedOpportunities(result)
		printer.PrintMetrics(&result.Metrics)
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))

	return nil
}

// loadConfig reads the config file when given and falls back to defaults.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return &cfg, nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyFlagOverrides layers CLI flags and environment variables over the
// file config. Flags win over env vars, env vars over the file.
func applyFlagOverrides(cfg *config.Config) {
	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}
	if discoverRedisURL != "" {
		cfg.RedisURL = discoverRedisURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if discoverDatabaseURL != "" {
		cfg.DatabaseURL = discoverDatabaseURL
	}
	if len(discoverRSSFeeds) > 0 {
		cfg.RSSFeeds = discoverRSSFeeds
	}
	if discoverGigBoardURL != "" {
		cfg.GigBoardURL = discoverGigBoardURL
	}
	if discoverUseBrowser {
		cfg.Providers.UseBrowser = true
	}
}

// buildInput assembles the discovery profile from --input or the flags.
func buildInput() (*types.DiscoveryInput, error) {
	if discoverInputFile != "" {
		content, err := os.ReadFile(discoverInputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		if discoverSchemaFile != "" {
			err = schemas.ValidateJSON(discoverSchemaFile, discoverInputFile)
		} else {
			err = schemas.ValidateDiscoveryInput(content)
		}
		if err != nil {
			return nil, fmt.Errorf("input document is invalid: %w", err)
		}
		var input types.DiscoveryInput
		if err := json.Unmarshal(content, &input); err != nil {
			return nil, fmt.Errorf("failed to parse input file: %w", err)
		}
		return &input, nil
	}

	if discoverSchemaFile != "" {
		return nil, fmt.Errorf("--schema requires --input")
	}

	if len(discoverSkills) == 0 {
		return nil, fmt.Errorf("must provide --skills or --input")
	}
	if discoverTime == "" {
		return nil, fmt.Errorf("must provide --time, e.g. '10-20 hours/week'")
	}
	if discoverIncomeGoal <= 0 {
		return nil, fmt.Errorf("must provide a positive --income-goal")
	}

	return &types.DiscoveryInput{
		Skills:           discoverSkills,
		TimeAvailability: discoverTime,
		RiskAppetite:     types.Level(strings.ToLower(discoverRisk)),
		IncomeGoal:       discoverIncomeGoal,
		WorkPreference:   strings.ToLower(discoverWork),
	}, nil
}

// buildRegistry registers every configured opportunity source.
func buildRegistry(cfg *config.Config) (*providers.Registry, error) {
	registry := providers.NewRegistry()

	sources := []providers.Provider{
		providers.NewFreelanceMarketplace(cfg.Providers.MemoTTL),
		providers.NewDigitalProductStudio(cfg.Providers.MemoTTL),
		providers.NewServiceMarketplace(cfg.Providers.MemoTTL),
		providers.NewPassiveIncomeLab(cfg.Providers.MemoTTL),
		providers.NewCoursePlatform(cfg.Providers.MemoTTL),
	}
	if cfg.GigBoardURL != "" {
		sources = append(sources, providers.NewGigBoard(cfg.GigBoardURL, cfg.Providers))
	}
	if len(cfg.RSSFeeds) > 0 {
		sources = append(sources, providers.NewContentFeed(cfg.RSSFeeds, cfg.Providers))
	}

	for _, p := range sources {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
