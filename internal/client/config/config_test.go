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

	assert.Equal(t, "http://localhost:3000", c.APIBaseURL)
	assert.Equal(t, "travelplanner.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutArgs(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"client"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":    "http://json:1",
		"request_timeout": "3s",
		"log_level":       "warn",
	})
	os.Args = []string{"client", "-c", path, "-a", "http://flag:2"}

	cfg := LoadConfig()

	assert.Equal(t, "http://flag:2", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "travelplanner.db", cfg.DatabasePath)
}
