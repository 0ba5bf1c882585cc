package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorMapResolve(t *testing.T) {
	m := LocatorMap{
		"submit_button":   "submit-btn-id",
		"welcome_message": "welcome-message",
	}

	testID, err := m.Resolve("login.yaml", "submit_button")
	require.NoError(t, err)
	assert.Equal(t, "submit-btn-id", testID)
}

func TestLocatorMapResolveMissingKey(t *testing.T) {
	m := LocatorMap{"submit_button": "submit-btn-id"}

	_, err := m.Resolve("login.yaml", "missing_key")
	require.Error(t, err)

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, "missing_key", configErr.Key)
	assert.Equal(t, "login.yaml", configErr.Source)
	assert.Contains(t, configErr.Error(), "missing_key")
}

func TestLocatorMapResolveEmptyValue(t *testing.T) {
	m := LocatorMap{"broken": ""}

	_, err := m.Resolve("login.yaml", "broken")

	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
}

func TestLocatorMapClone(t *testing.T) {
	m := LocatorMap{"a": "test-a"}

	clone := m.Clone()
	clone["a"] = "changed"
	clone["b"] = "test-b"

	assert.Equal(t, "test-a", m["a"])
	assert.Len(t, m, 1)
}
