package steps

import (
	"strings"
	"unicode"
)

// BeginScenario - opens a fresh browser context and page for one scenario
func (h *Harness) BeginScenario() error {
	h.screen = nil
	h.screenName = ""

	_, err := h.session.NewPage()
	return err
}

// EndScenario - captures a failure screenshot, then closes the scenario context
func (h *Harness) EndScenario(name string, scenarioErr error) error {
	if scenarioErr != nil && h.page() != nil {
		data, err := h.page().Screenshot()
		if err == nil {
			if _, err := h.store.SaveScreenshot(artifactName(name)+"-failed", name, data); err != nil {
				h.logger.WithError(err).Warn("could not save failure screenshot")
			}
		}
	}

	return h.session.ClosePage()
}

// artifactName - converts a scenario name into a safe file name
func artifactName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "scenario"
	}
	return out
}
