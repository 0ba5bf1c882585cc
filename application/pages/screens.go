package pages

import (
	"fmt"
	"strings"

	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
)

var _ interfaces.Screen = (*Base)(nil)

// NewScreen - creates the page object for a screen by name
func NewScreen(name string, page playwright.Page, cfg *config.Config, store interfaces.ArtifactStore, source interfaces.LocatorSource) (*Base, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "home":
		screen, err := NewHome(page, cfg, store, source)
		if err != nil {
			return nil, err
		}
		return screen.Base, nil
	case "login":
		screen, err := NewLogin(page, cfg, store, source)
		if err != nil {
			return nil, err
		}
		return screen.Base, nil
	case "dashboard":
		screen, err := NewDashboard(page, cfg, store, source)
		if err != nil {
			return nil, err
		}
		return screen.Base, nil
	}
	return nil, fmt.Errorf("unknown screen: %s", name)
}
