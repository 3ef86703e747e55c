package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"query": "Find engineering leads at c2fo.com",
		"max_results": 7,
		"verbose": true,
		"addr": ":9090"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "Find engineering leads at c2fo.com", cfg.Query)
	assert.Equal(t, 7, cfg.MaxResults)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, ":9090", cfg.Addr)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
	assert.NoError(t, (&Config{MaxResults: 5}).Validate())
	assert.Error(t, (&Config{MaxResults: -1}).Validate())
	assert.Error(t, (&Config{MaxResults: 11}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Query: "from flags", MaxResults: 3}
	defaults := Config{
		Query:        "from file",
		Addr:         ":8080",
		MaxResults:   5,
		GeminiAPIKey: "file-key",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "from flags", merged.Query, "explicit values win")
	assert.Equal(t, 3, merged.MaxResults)
	assert.Equal(t, ":8080", merged.Addr, "empty values fall back to defaults")
	assert.Equal(t, "file-key", merged.GeminiAPIKey)
}

func TestLoadCredentials_AllPresent(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "gem-key")
	t.Setenv(EnvSearchAPIKey, "search-key")
	t.Setenv(EnvSearchCX, "cx-id")
	t.Setenv(EnvEnrichAPIKey, "enrich-key")
	t.Setenv(EnvEnrichBaseURL, "")

	creds, err := LoadCredentials(nil)
	require.NoError(t, err)
	assert.Equal(t, "gem-key", creds.GeminiAPIKey)
	assert.Equal(t, "search-key", creds.SearchAPIKey)
	assert.Equal(t, "cx-id", creds.SearchCX)
	assert.Equal(t, "enrich-key", creds.EnrichAPIKey)
	assert.Equal(t, DefaultEnrichBaseURL, creds.EnrichBaseURL)
}

func TestLoadCredentials_Missing(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "gem-key")
	t.Setenv(EnvSearchAPIKey, "")
	t.Setenv(EnvSearchCX, "")
	t.Setenv(EnvEnrichAPIKey, "enrich-key")

	creds, err := LoadCredentials(nil)
	assert.Nil(t, creds)
	require.Error(t, err)

	var missing *MissingCredentialsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{EnvSearchAPIKey, EnvSearchCX}, missing.Missing)
}

func TestLoadCredentials_ConfigFallback(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "env-key")
	t.Setenv(EnvSearchAPIKey, "")
	t.Setenv(EnvSearchCX, "")
	t.Setenv(EnvEnrichAPIKey, "")
	t.Setenv(EnvEnrichBaseURL, "")

	cfg := &Config{
		GeminiAPIKey:  "file-gem",
		SearchAPIKey:  "file-search",
		SearchCX:      "file-cx",
		EnrichAPIKey:  "file-enrich",
		EnrichBaseURL: "http://localhost:8081",
	}

	creds, err := LoadCredentials(cfg)
	require.NoError(t, err)
	assert.Equal(t, "env-key", creds.GeminiAPIKey, "environment wins over file")
	assert.Equal(t, "file-search", creds.SearchAPIKey)
	assert.Equal(t, "http://localhost:8081", creds.EnrichBaseURL)
}
