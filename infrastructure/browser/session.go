package browser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"e2e_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Session owns the playwright lifecycle for one suite run: the driver and
// browser live for the whole suite, the context and page are replaced per
// scenario so scenarios never share cookies or storage.
type Session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	cfg     *config.Config
	logger  *logrus.Logger
}

// Launch - starts playwright and launches the configured browser engine
func Launch(cfg *config.Config, logger *logrus.Logger) (*Session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(cfg.SlowMo.Milliseconds()))
	}
	if cfg.ExecutablePath != "" {
		launchOptions.ExecutablePath = playwright.String(cfg.ExecutablePath)
	}

	browserType, err := engine(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	b, err := browserType.Launch(launchOptions)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	logger.WithFields(logrus.Fields{
		"browser":  cfg.Browser,
		"headless": cfg.Headless,
	}).Info("browser launched")

	return &Session{
		pw:      pw,
		browser: b,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// engine - resolves the browser engine name to a playwright browser type
func engine(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "chromium", "chrome", "":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unknown browser engine: %s", name)
}

// NewPage - creates a fresh browser context and page for one scenario
func (s *Session) NewPage() (playwright.Page, error) {
	if s.context != nil {
		if err := s.ClosePage(); err != nil {
			return nil, err
		}
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  s.cfg.ViewportWidth,
			Height: s.cfg.ViewportHeight,
		},
		IgnoreHttpsErrors: playwright.Bool(s.cfg.IgnoreHTTPSErrors),
	}

	if s.cfg.StorageState != "" {
		if _, err := os.Stat(s.cfg.StorageState); err == nil {
			data, err := os.ReadFile(s.cfg.StorageState)
			if err == nil {
				var storageState playwright.StorageState
				if err := json.Unmarshal(data, &storageState); err == nil {
					contextOptions.StorageState = storageState.ToOptionalStorageState()
				}
			}
		}
	}

	context, err := s.browser.NewContext(contextOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(float64(s.cfg.ActionTimeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(s.cfg.NavigationTimeout.Milliseconds()))

	page.OnDialog(func(dialog playwright.Dialog) {
		dialog.Accept()
	})

	s.context = context
	s.page = page

	return page, nil
}

// Page - returns the page of the current scenario
func (s *Session) Page() playwright.Page {
	return s.page
}

// SaveState - persists the current context storage state to the configured path
func (s *Session) SaveState() error {
	if s.context == nil || s.cfg.StorageState == "" {
		return nil
	}

	if dir := filepath.Dir(s.cfg.StorageState); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create storage state directory: %w", err)
		}
	}

	_, err := s.context.StorageState(s.cfg.StorageState)
	if err != nil {
		if isClosedErr(err) {
			return nil
		}
		return fmt.Errorf("failed to save storage state: %w", err)
	}

	return nil
}

// ClosePage - closes the current scenario context and page
func (s *Session) ClosePage() error {
	if s.context == nil {
		return nil
	}

	err := s.context.Close()
	s.context = nil
	s.page = nil

	if err != nil && !isClosedErr(err) {
		return fmt.Errorf("failed to close context: %w", err)
	}
	return nil
}

// Close - saves storage state, then closes the browser and stops playwright
func (s *Session) Close() error {
	var closeErr error

	// State must be captured while the context is still alive.
	if err := s.SaveState(); err != nil {
		closeErr = err
	}

	if err := s.ClosePage(); err != nil && closeErr == nil {
		closeErr = err
	}

	if s.browser != nil {
		if err := s.browser.Close(); err != nil && !isClosedErr(err) {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; failed to close browser: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("failed to close browser: %w", err)
			}
		}
		s.browser = nil
	}

	if s.pw != nil {
		if err := s.pw.Stop(); err != nil && closeErr == nil {
			closeErr = fmt.Errorf("failed to stop playwright: %w", err)
		}
		s.pw = nil
	}

	return closeErr
}

// isClosedErr - reports whether an error is a benign already-closed error
func isClosedErr(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "closed") || strings.Contains(msg, "target closed")
}
