package pages

import (
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
)

// Home wraps the landing screen at /
type Home struct {
	*Base
}

// NewHome - creates the landing screen page object
func NewHome(page playwright.Page, cfg *config.Config, store interfaces.ArtifactStore, source interfaces.LocatorSource) (*Home, error) {
	base, err := NewBase(page, cfg, store, "/", "home.yaml", source)
	if err != nil {
		return nil, err
	}
	return &Home{Base: base}, nil
}

// WelcomeMessage - returns the welcome banner handle
func (h *Home) WelcomeMessage() (playwright.Locator, error) {
	return h.Resolve("welcome_message")
}

// OpenLogin - follows the navigation link to the login screen
func (h *Home) OpenLogin() error {
	link, err := h.Resolve("nav_login_link")
	if err != nil {
		return err
	}
	return link.Click()
}
