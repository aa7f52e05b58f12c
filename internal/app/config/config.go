// Package config loads runtime settings for the Level Up Gaming client.
// Sources are layered: defaults, then a JSON file (-c/-config), then
// command-line flags; later sources win.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - CatalogBaseURL: base URL of the remote product/event API.
//   - DatabasePath: sqlite file holding accounts, session and catalog cache.
//   - RequestTimeout: per-request bound for catalog API calls.
//   - StrictEmail: use the strict email rule instead of the legacy
//     permissive one on registration forms.
//   - RequireTerms: registration requires the terms checkbox.
type Config struct {
	CatalogBaseURL string
	DatabasePath   string
	RequestTimeout time.Duration
	StrictEmail    bool
	RequireTerms   bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "levelup.db"
	c.RequestTimeout = 5 * time.Second
	c.StrictEmail = false
	c.RequireTerms = true
}

// LoadConfig constructs a Config, applies defaults, then overlays JSON and
// flags in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
