package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultBaseURL       = "http://localhost:5173"
	defaultBrowser       = "chromium"
	defaultScreenshotDir = "screenshots"
	defaultLocatorDir    = "locators"

	defaultNavigationTimeout = 30 * time.Second
	defaultActionTimeout     = 5 * time.Second

	defaultViewportWidth  = 1920
	defaultViewportHeight = 1080
)

// Config holds harness settings resolved from the environment
type Config struct {
	BaseURL        string
	Browser        string
	Headless       bool
	SlowMo         time.Duration
	ScreenshotDir  string
	LocatorDir     string
	StorageState   string
	ExecutablePath string

	NavigationTimeout time.Duration
	ActionTimeout     time.Duration

	ViewportWidth  int
	ViewportHeight int

	IgnoreHTTPSErrors bool
}

// Load - builds configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		BaseURL:        getEnv("BASE_URL", defaultBaseURL),
		Browser:        getEnv("BROWSER", defaultBrowser),
		Headless:       getEnvBool("HEADLESS", true),
		SlowMo:         getEnvMillis("SLOW_MO", 0),
		ScreenshotDir:  getEnv("SCREENSHOT_DIR", defaultScreenshotDir),
		LocatorDir:     getEnv("LOCATOR_DIR", defaultLocatorDir),
		StorageState:   os.Getenv("STORAGE_STATE"),
		ExecutablePath: os.Getenv("BROWSER_EXECUTABLE_PATH"),

		NavigationTimeout: getEnvMillis("NAVIGATION_TIMEOUT", defaultNavigationTimeout),
		ActionTimeout:     getEnvMillis("ACTION_TIMEOUT", defaultActionTimeout),

		ViewportWidth:  getEnvInt("VIEWPORT_WIDTH", defaultViewportWidth),
		ViewportHeight: getEnvInt("VIEWPORT_HEIGHT", defaultViewportHeight),

		IgnoreHTTPSErrors: getEnvBool("IGNORE_HTTPS_ERRORS", true),
	}
}

// URL - joins the base URL with a screen path
func (c *Config) URL(path string) string {
	if path == "" {
		return c.BaseURL
	}
	base := c.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if path[0] != '/' {
		path = "/" + path
	}
	return base + path
}

// getEnv - reads an environment variable with a fallback default
func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// getEnvBool - reads a boolean environment variable with a fallback default
func getEnvBool(name string, fallback bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvInt - reads an integer environment variable with a fallback default
func getEnvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvMillis - reads a millisecond duration from the environment
func getEnvMillis(name string, fallback time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
