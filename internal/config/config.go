// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	Query      string `json:"query,omitempty"`       // Free-text lead query
	MaxResults int    `json:"max_results,omitempty"` // Maximum web search results per step
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed progress information
	JSONOutput bool   `json:"json,omitempty"`        // Emit the raw result envelope as JSON

	// Server
	Addr string `json:"addr,omitempty"` // Listen address for serve mode

	// Credentials (env vars take precedence; see LoadCredentials)
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`
	SearchAPIKey  string `json:"search_api_key,omitempty"`
	SearchCX      string `json:"search_cx,omitempty"`
	EnrichAPIKey  string `json:"enrich_api_key,omitempty"`
	EnrichBaseURL string `json:"enrich_base_url,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("config error: 'max_results' must be non-negative")
	}
	if c.MaxResults > 10 {
		return fmt.Errorf("config error: 'max_results' must be at most 10")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Query == "" {
		result.Query = defaults.Query
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.SearchAPIKey == "" {
		result.SearchAPIKey = defaults.SearchAPIKey
	}
	if result.SearchCX == "" {
		result.SearchCX = defaults.SearchCX
	}
	if result.EnrichAPIKey == "" {
		result.EnrichAPIKey = defaults.EnrichAPIKey
	}
	if result.EnrichBaseURL == "" {
		result.EnrichBaseURL = defaults.EnrichBaseURL
	}
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
