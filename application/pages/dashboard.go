package pages

import (
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
)

// Dashboard wraps the authenticated dashboard screen at /dashboard
type Dashboard struct {
	*Base
}

// NewDashboard - creates the dashboard screen page object
func NewDashboard(page playwright.Page, cfg *config.Config, store interfaces.ArtifactStore, source interfaces.LocatorSource) (*Dashboard, error) {
	base, err := NewBase(page, cfg, store, "/dashboard", "dashboard.yaml", source)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Base: base}, nil
}

// LogOut - opens the user menu and clicks the logout entry
func (d *Dashboard) LogOut() error {
	menu, err := d.Resolve("user_menu")
	if err != nil {
		return err
	}
	if err := menu.Click(); err != nil {
		return err
	}

	logout, err := d.Resolve("logout_button")
	if err != nil {
		return err
	}
	return logout.Click()
}
