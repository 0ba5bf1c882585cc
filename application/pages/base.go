package pages

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"e2e_automation/domain/entities"
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
)

// Base is the shared page-object core. Concrete screens embed it and differ
// only in their URL path and locator file. The playwright page is borrowed
// from the session; Base never closes it.
type Base struct {
	page        playwright.Page
	cfg         *config.Config
	store       interfaces.ArtifactStore
	path        string
	locatorFile string
	locators    entities.LocatorMap
	expect      playwright.PlaywrightAssertions
}

// NewBase - creates a page object core for one screen. locatorFile is a file
// name resolved against the configured locator directory, or an absolute path.
func NewBase(page playwright.Page, cfg *config.Config, store interfaces.ArtifactStore, path, locatorFile string, source interfaces.LocatorSource) (*Base, error) {
	if locatorFile != "" && !filepath.IsAbs(locatorFile) {
		locatorFile = filepath.Join(cfg.LocatorDir, locatorFile)
	}

	base := &Base{
		page:        page,
		cfg:         cfg,
		store:       store,
		path:        path,
		locatorFile: locatorFile,
		expect:      playwright.NewPlaywrightAssertions(float64(cfg.ActionTimeout.Milliseconds())),
	}

	if locatorFile != "" {
		locators, err := source.Load(locatorFile)
		if err != nil {
			return nil, err
		}
		base.locators = locators
	}

	return base, nil
}

// Path - returns the screen path relative to the base URL
func (b *Base) Path() string {
	return b.path
}

// Navigate - opens the screen URL and waits until the network is idle
func (b *Base) Navigate(ctx context.Context) error {
	_, err := b.page.Goto(b.cfg.URL(b.path), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(b.cfg.NavigationTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", b.path, err)
	}
	return nil
}

// WaitForLoad - blocks until the network is idle or the timeout elapses
func (b *Base) WaitForLoad(ctx context.Context, timeout time.Duration) error {
	err := b.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return &entities.TimeoutError{Op: "wait for load", Timeout: timeout, Err: err}
	}
	return nil
}

// Resolve - looks up a symbolic key in the locator map and returns a handle
// scoped to the current page
func (b *Base) Resolve(key string) (playwright.Locator, error) {
	if b.locators == nil {
		return nil, &entities.ConfigError{Key: key}
	}
	testID, err := b.locators.Resolve(b.locatorFile, key)
	if err != nil {
		return nil, err
	}
	return b.page.GetByTestId(testID), nil
}

// ByRole - returns a handle for an element by ARIA role, optionally named
func (b *Base) ByRole(role string, name string) playwright.Locator {
	ariaRole := playwright.AriaRole(strings.ToLower(role))
	if name != "" {
		return b.page.GetByRole(ariaRole, playwright.PageGetByRoleOptions{
			Name: name,
		})
	}
	return b.page.GetByRole(ariaRole)
}

// ByText - returns a handle for an element by its text content
func (b *Base) ByText(text string, exact bool) playwright.Locator {
	return b.page.GetByText(text, playwright.PageGetByTextOptions{
		Exact: playwright.Bool(exact),
	})
}

// BySelector - returns a handle for an element by CSS selector
func (b *Base) BySelector(selector string) playwright.Locator {
	return b.page.Locator(selector)
}

// Click - waits for the element to be visible, then clicks it
func (b *Base) Click(selector string) error {
	locator := b.page.Locator(selector)

	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(b.cfg.ActionTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("element %s not found or not visible: %w", selector, err)
	}

	return locator.Click()
}

// Fill - waits for the input to be visible, then replaces its value
func (b *Base) Fill(selector, value string) error {
	locator := b.page.Locator(selector)

	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(b.cfg.ActionTimeout.Milliseconds())),
	})
	if err != nil {
		return fmt.Errorf("input field %s not found: %w", selector, err)
	}

	if err := locator.Clear(); err != nil {
		return err
	}
	return locator.Fill(value)
}

// IsVisible - probes element visibility; a timeout becomes false, never an error
func (b *Base) IsVisible(selector string, timeout time.Duration) bool {
	err := b.page.Locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	return err == nil
}

// WaitForElement - waits for an element to become visible and returns its handle
func (b *Base) WaitForElement(selector string, timeout time.Duration) (playwright.Locator, error) {
	locator := b.page.Locator(selector)
	err := locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return nil, &entities.TimeoutError{Op: fmt.Sprintf("wait for %s", selector), Timeout: timeout, Err: err}
	}
	return locator, nil
}

// ExpectVisible - asserts that the element is visible
func (b *Base) ExpectVisible(selector string) error {
	return b.expect.Locator(b.page.Locator(selector)).ToBeVisible()
}

// ExpectText - asserts that the element contains the given text
func (b *Base) ExpectText(selector, text string) error {
	return b.expect.Locator(b.page.Locator(selector)).ToContainText(text)
}

// ExpectURLContains - asserts that the current URL contains the given path
func (b *Base) ExpectURLContains(path string) error {
	return b.expect.Page(b.page).ToHaveURL(regexp.MustCompile(regexp.QuoteMeta(path)))
}

// ExpectTitle - asserts the page title
func (b *Base) ExpectTitle(title string) error {
	return b.expect.Page(b.page).ToHaveTitle(title)
}

// Screenshot - captures the current view into the artifact store
func (b *Base) Screenshot(name string) (string, error) {
	data, err := b.page.Screenshot()
	if err != nil {
		return "", fmt.Errorf("failed to take screenshot: %w", err)
	}

	record, err := b.store.SaveScreenshot(name, "", data)
	if err != nil {
		return "", err
	}
	return record.Path, nil
}

// Title - returns the current page title
func (b *Base) Title() (string, error) {
	return b.page.Title()
}

// URL - returns the current page URL
func (b *Base) URL() string {
	return b.page.URL()
}
