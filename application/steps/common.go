package steps

import (
	"context"
	"fmt"
	"regexp"

	"e2e_automation/application/pages"
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/browser"
	"e2e_automation/infrastructure/config"

	"github.com/cucumber/godog"
	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Harness carries the shared dependencies of all step definitions for one
// scenario run. Steps go straight to the playwright page; the page-object
// steps at the bottom go through a screen object instead.
type Harness struct {
	cfg     *config.Config
	session *browser.Session
	source  interfaces.LocatorSource
	store   interfaces.ArtifactStore
	logger  *logrus.Logger
	expect  playwright.PlaywrightAssertions

	// screen set by "I open the ... page", reset between scenarios
	screen     *pages.Base
	screenName string
}

// NewHarness - creates the step harness around a launched session
func NewHarness(cfg *config.Config, session *browser.Session, source interfaces.LocatorSource, store interfaces.ArtifactStore, logger *logrus.Logger) *Harness {
	return &Harness{
		cfg:     cfg,
		session: session,
		source:  source,
		store:   store,
		logger:  logger,
		expect:  playwright.NewPlaywrightAssertions(float64(cfg.ActionTimeout.Milliseconds())),
	}
}

// InitializeScenario - binds every scenario phrase to its action
func (h *Harness) InitializeScenario(sc *godog.ScenarioContext) {
	sc.Step(`^I am on the application$`, h.iAmOnTheApplication)
	sc.Step(`^I navigate to "([^"]*)"$`, h.iNavigateTo)
	sc.Step(`^I open the ([a-z]+) page$`, h.iOpenThePage)

	sc.Step(`^I click on "([^"]*)"$`, h.iClickOn)
	sc.Step(`^I click the button "([^"]*)"$`, h.iClickTheButton)
	sc.Step(`^I fill "([^"]*)" with "([^"]*)"$`, h.iFillWith)
	sc.Step(`^I type "([^"]*)" into the field "([^"]*)"$`, h.iTypeIntoTheField)
	sc.Step(`^I wait for the page to load$`, h.iWaitForThePageToLoad)
	sc.Step(`^I take a screenshot named "([^"]*)"$`, h.iTakeAScreenshotNamed)

	sc.Step(`^I should see "([^"]*)"$`, h.iShouldSee)
	sc.Step(`^I should not see "([^"]*)"$`, h.iShouldNotSee)
	sc.Step(`^I should see element "([^"]*)"$`, h.iShouldSeeElement)
	sc.Step(`^the "([^"]*)" element should be visible on the ([a-z]+) page$`, h.elementShouldBeVisibleOnPage)
	sc.Step(`^the URL should contain "([^"]*)"$`, h.theURLShouldContain)
	sc.Step(`^the element "([^"]*)" should have text "([^"]*)"$`, h.theElementShouldHaveText)
	sc.Step(`^the page title should be "([^"]*)"$`, h.thePageTitleShouldBe)
	sc.Step(`^the page should load without errors$`, h.thePageShouldLoadWithoutErrors)
}

// page - returns the current scenario page
func (h *Harness) page() playwright.Page {
	return h.session.Page()
}

func (h *Harness) iAmOnTheApplication() error {
	_, err := h.page().Goto(h.cfg.BaseURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	return err
}

func (h *Harness) iNavigateTo(path string) error {
	_, err := h.page().Goto(h.cfg.URL(path), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	})
	return err
}

func (h *Harness) iOpenThePage(name string) error {
	screen, err := pages.NewScreen(name, h.page(), h.cfg, h.store, h.source)
	if err != nil {
		return err
	}
	if err := screen.Navigate(context.Background()); err != nil {
		return err
	}
	h.screen = screen
	h.screenName = name
	return nil
}

func (h *Harness) iClickOn(selector string) error {
	return h.page().Locator(selector).Click()
}

func (h *Harness) iClickTheButton(text string) error {
	return h.page().GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: text,
	}).Click()
}

func (h *Harness) iFillWith(selector, value string) error {
	return h.page().Locator(selector).Fill(value)
}

func (h *Harness) iTypeIntoTheField(value, field string) error {
	return h.page().GetByLabel(field).Fill(value)
}

func (h *Harness) iWaitForThePageToLoad() error {
	return h.page().WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	})
}

func (h *Harness) iTakeAScreenshotNamed(name string) error {
	data, err := h.page().Screenshot()
	if err != nil {
		return fmt.Errorf("failed to take screenshot: %w", err)
	}
	_, err = h.store.SaveScreenshot(artifactName(name), "", data)
	return err
}

func (h *Harness) iShouldSee(text string) error {
	return h.expect.Locator(h.page().GetByText(text).First()).ToBeVisible()
}

func (h *Harness) iShouldNotSee(text string) error {
	return h.expect.Locator(h.page().GetByText(text)).Not().ToBeVisible()
}

func (h *Harness) iShouldSeeElement(selector string) error {
	return h.expect.Locator(h.page().Locator(selector)).ToBeVisible()
}

func (h *Harness) elementShouldBeVisibleOnPage(key, name string) error {
	screen := h.screen
	if screen == nil || h.screenName != name {
		created, err := pages.NewScreen(name, h.page(), h.cfg, h.store, h.source)
		if err != nil {
			return err
		}
		screen = created
	}

	locator, err := screen.Resolve(key)
	if err != nil {
		return err
	}
	return h.expect.Locator(locator).ToBeVisible()
}

func (h *Harness) theURLShouldContain(path string) error {
	return h.expect.Page(h.page()).ToHaveURL(regexp.MustCompile(regexp.QuoteMeta(path)))
}

func (h *Harness) theElementShouldHaveText(selector, text string) error {
	return h.expect.Locator(h.page().Locator(selector)).ToContainText(text)
}

func (h *Harness) thePageTitleShouldBe(title string) error {
	return h.expect.Page(h.page()).ToHaveTitle(title)
}

func (h *Harness) thePageShouldLoadWithoutErrors() error {
	return h.expect.Locator(h.page().Locator("body")).ToBeVisible()
}
