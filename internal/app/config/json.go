package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/levelup-gaming/levelup/internal/flagx"
	"github.com/levelup-gaming/levelup/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the file
// express the timeout as "5s" or as integer nanoseconds.
type JsonConfig struct {
	CatalogBaseURL string         `json:"catalog_base_url"`
	DatabasePath   string         `json:"database_path"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StrictEmail    *bool          `json:"strict_email"`
	RequireTerms   *bool          `json:"require_terms"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Missing file path means no JSON layer. Read or unmarshal errors panic, as
// a broken config file should stop startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.CatalogBaseURL != "" {
		cfg.CatalogBaseURL = jc.CatalogBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.StrictEmail != nil {
		cfg.StrictEmail = *jc.StrictEmail
	}
	if jc.RequireTerms != nil {
		cfg.RequireTerms = *jc.RequireTerms
	}
}
