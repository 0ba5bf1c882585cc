package main

import (
	"fmt"
	"os"

	"e2e_automation/presentation/runner"

	"github.com/spf13/cobra"
)

var (
	features      []string
	tags          string
	format        string
	baseURL       string
	headed        bool
	stopOnFailure bool
	verbose       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "e2e",
		Short: "Run browser end-to-end scenarios",
		Long: `e2e runs Gherkin scenarios against the application under test using
Playwright page objects and YAML locator files.

Example:
  e2e --features features --tags @smoke --base-url http://localhost:5173`,
		RunE: run,
	}

	rootCmd.Flags().StringSliceVar(&features, "features", nil, "Feature file paths (default: features)")
	rootCmd.Flags().StringVar(&tags, "tags", "", "Scenario tag filter expression")
	rootCmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty, progress, junit, cucumber")
	rootCmd.Flags().StringVar(&baseURL, "base-url", "", "Application base URL (overrides BASE_URL)")
	rootCmd.Flags().BoolVar(&headed, "headed", false, "Run with a visible browser window")
	rootCmd.Flags().BoolVar(&stopOnFailure, "stop-on-failure", false, "Stop the run on the first failing scenario")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := runner.Options{
		FeaturePaths:  features,
		Tags:          tags,
		Format:        format,
		BaseURL:       baseURL,
		StopOnFailure: stopOnFailure,
		Verbose:       verbose,
	}
	if cmd.Flags().Changed("headed") {
		headless := !headed
		opts.Headless = &headless
	}

	status, err := runner.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if status != 0 {
		os.Exit(status)
	}
	return nil
}
