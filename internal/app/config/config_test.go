package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.CatalogBaseURL)
	assert.Equal(t, "levelup.db", c.DatabasePath)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	assert.False(t, c.StrictEmail)
	assert.True(t, c.RequireTerms)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.CatalogBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.RequireTerms)
}
