package pages

import (
	"e2e_automation/domain/interfaces"
	"e2e_automation/infrastructure/config"

	"github.com/playwright-community/playwright-go"
)

// Login wraps the login screen at /login
type Login struct {
	*Base
}

// NewLogin - creates the login screen page object
func NewLogin(page playwright.Page, cfg *config.Config, store interfaces.ArtifactStore, source interfaces.LocatorSource) (*Login, error) {
	base, err := NewBase(page, cfg, store, "/login", "login.yaml", source)
	if err != nil {
		return nil, err
	}
	return &Login{Base: base}, nil
}

// LogIn - fills the credential fields and submits the form
func (l *Login) LogIn(username, password string) error {
	userInput, err := l.Resolve("username_input")
	if err != nil {
		return err
	}
	if err := userInput.Fill(username); err != nil {
		return err
	}

	passInput, err := l.Resolve("password_input")
	if err != nil {
		return err
	}
	if err := passInput.Fill(password); err != nil {
		return err
	}

	submit, err := l.Resolve("submit_button")
	if err != nil {
		return err
	}
	return submit.Click()
}

// ErrorBanner - returns the authentication error banner handle
func (l *Login) ErrorBanner() (playwright.Locator, error) {
	return l.Resolve("error_banner")
}
