package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List the configured opportunity sources",
	Long:  "List every opportunity source the discover command would search, given the current config and flags.",
	RunE:  runProviders,
}

var providersConfigFile string

func init() {
	providersCmd.Flags().StringVar(&providersConfigFile, "config", "", "Path to JSON config file (optional)")

	rootCmd.AddCommand(providersCmd)
}

func runProviders(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(providersConfigFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg)

	registry, err := buildRegistry(cfg)
	if err != nil {
		return fmt.Errorf("failed to build provider registry: %w", err)
	}

	enabled := registry.Sources()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SOURCE\tENABLED")
	for _, source := range registry.Order() {
		_, _ = fmt.Fprintf(w, "%s\t%t\n", source, enabled[source])
	}
	return w.Flush()
}
