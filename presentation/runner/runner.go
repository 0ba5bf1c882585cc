package runner

import (
	"context"
	"fmt"

	"e2e_automation/application/steps"
	"e2e_automation/infrastructure/browser"
	"e2e_automation/infrastructure/config"
	"e2e_automation/infrastructure/locators"
	"e2e_automation/infrastructure/storage"

	"github.com/cucumber/godog"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Options are the CLI-level overrides applied on top of the environment
type Options struct {
	FeaturePaths  []string
	Tags          string
	Format        string
	StopOnFailure bool
	BaseURL       string
	Headless      *bool
	Verbose       bool
}

// Run - wires the harness together and executes the scenario suite.
// The returned code follows godog conventions: 0 passed, non-zero failed.
func Run(opts Options) (int, error) {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	// Setup logger
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	cfg := config.Load()
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Headless != nil {
		cfg.Headless = *opts.Headless
	}

	store, err := storage.NewArtifactStore(cfg.ScreenshotDir, logger)
	if err != nil {
		return 1, fmt.Errorf("failed to initialize artifact store: %w", err)
	}

	registry := locators.NewRegistry(logger)

	session, err := browser.Launch(cfg, logger)
	if err != nil {
		return 1, fmt.Errorf("failed to initialize browser: %w", err)
	}
	defer session.Close()

	harness := steps.NewHarness(cfg, session, registry, store, logger)

	paths := opts.FeaturePaths
	if len(paths) == 0 {
		paths = []string{"features"}
	}
	format := opts.Format
	if format == "" {
		format = "pretty"
	}

	suite := godog.TestSuite{
		Name: "e2e",
		ScenarioInitializer: func(sc *godog.ScenarioContext) {
			sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
				logger.WithField("scenario", scenario.Name).Debug("starting scenario")
				return ctx, harness.BeginScenario()
			})
			sc.After(func(ctx context.Context, scenario *godog.Scenario, scenarioErr error) (context.Context, error) {
				return ctx, harness.EndScenario(scenario.Name, scenarioErr)
			})

			harness.InitializeScenario(sc)
		},
		Options: &godog.Options{
			Format:        format,
			Paths:         paths,
			Tags:          opts.Tags,
			StopOnFailure: opts.StopOnFailure,
			Strict:        true,
		},
	}

	return suite.Run(), nil
}
