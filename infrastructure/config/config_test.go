package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, name := range []string{"BASE_URL", "BROWSER", "HEADLESS", "SCREENSHOT_DIR", "NAVIGATION_TIMEOUT", "ACTION_TIMEOUT"} {
		t.Setenv(name, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:5173", cfg.BaseURL)
	assert.Equal(t, "chromium", cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	assert.Equal(t, "locators", cfg.LocatorDir)
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 5*time.Second, cfg.ActionTimeout)
	assert.Equal(t, 1920, cfg.ViewportWidth)
	assert.Equal(t, 1080, cfg.ViewportHeight)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BASE_URL", "https://staging.example.com")
	t.Setenv("BROWSER", "firefox")
	t.Setenv("HEADLESS", "false")
	t.Setenv("SLOW_MO", "250")
	t.Setenv("ACTION_TIMEOUT", "1500")

	cfg := Load()

	assert.Equal(t, "https://staging.example.com", cfg.BaseURL)
	assert.Equal(t, "firefox", cfg.Browser)
	assert.False(t, cfg.Headless)
	assert.Equal(t, 250*time.Millisecond, cfg.SlowMo)
	assert.Equal(t, 1500*time.Millisecond, cfg.ActionTimeout)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("HEADLESS", "not-a-bool")
	t.Setenv("NAVIGATION_TIMEOUT", "soon")
	t.Setenv("VIEWPORT_WIDTH", "-")

	cfg := Load()

	assert.True(t, cfg.Headless)
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 1920, cfg.ViewportWidth)
}

func TestURL(t *testing.T) {
	cfg := &Config{BaseURL: "http://localhost:5173"}

	assert.Equal(t, "http://localhost:5173", cfg.URL(""))
	assert.Equal(t, "http://localhost:5173/login", cfg.URL("/login"))
	assert.Equal(t, "http://localhost:5173/login", cfg.URL("login"))

	cfg.BaseURL = "http://localhost:5173/"
	assert.Equal(t, "http://localhost:5173/login", cfg.URL("/login"))
}
