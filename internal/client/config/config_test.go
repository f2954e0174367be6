package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080/", c.BaseURL)
	assert.Equal(t, "sqlite:pulse.db", c.StoreDSN)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080/", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"base_url":        "http://from-json/",
		"request_timeout": "4s",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "http://from-flag/"}

	cfg := LoadConfig()

	assert.Equal(t, "http://from-flag/", cfg.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "sqlite:pulse.db", cfg.StoreDSN)
}
