package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names for the external service credentials.
const (
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvSearchAPIKey  = "GOOGLE_SEARCH_API_KEY"
	EnvSearchCX      = "GOOGLE_SEARCH_CX"
	EnvEnrichAPIKey  = "COMPANY_ENRICH_API_KEY"
	EnvEnrichBaseURL = "COMPANY_ENRICH_BASE_URL"
)

// DefaultEnrichBaseURL is the enrichment provider endpoint used when no
// override is configured.
const DefaultEnrichBaseURL = "https://api.companyenrich.com"

// Credentials holds the validated API credentials for all external services.
// A Credentials value only exists after every required credential was found,
// so downstream constructors never re-check presence.
type Credentials struct {
	GeminiAPIKey  string
	SearchAPIKey  string
	SearchCX      string
	EnrichAPIKey  string
	EnrichBaseURL string
}

// MissingCredentialsError reports which required credentials were absent.
type MissingCredentialsError struct {
	Missing []string
}

func (e *MissingCredentialsError) Error() string {
	return fmt.Sprintf("missing required credentials: %s", strings.Join(e.Missing, ", "))
}

// LoadCredentials reads credentials from the environment, falling back to the
// config file values, and fails fast when any required credential is absent.
// The enrichment base URL is optional and defaults to the hosted provider.
func LoadCredentials(cfg *Config) (*Credentials, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	creds := &Credentials{
		GeminiAPIKey:  envOr(EnvGeminiAPIKey, cfg.GeminiAPIKey),
		SearchAPIKey:  envOr(EnvSearchAPIKey, cfg.SearchAPIKey),
		SearchCX:      envOr(EnvSearchCX, cfg.SearchCX),
		EnrichAPIKey:  envOr(EnvEnrichAPIKey, cfg.EnrichAPIKey),
		EnrichBaseURL: envOr(EnvEnrichBaseURL, cfg.EnrichBaseURL),
	}
	if creds.EnrichBaseURL == "" {
		creds.EnrichBaseURL = DefaultEnrichBaseURL
	}

	var missing []string
	if creds.GeminiAPIKey == "" {
		missing = append(missing, EnvGeminiAPIKey)
	}
	if creds.SearchAPIKey == "" {
		missing = append(missing, EnvSearchAPIKey)
	}
	if creds.SearchCX == "" {
		missing = append(missing, EnvSearchCX)
	}
	if creds.EnrichAPIKey == "" {
		missing = append(missing, EnvEnrichAPIKey)
	}
	if len(missing) > 0 {
		return nil, &MissingCredentialsError{Missing: missing}
	}

	return creds, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return strings.TrimSpace(fallback)
}
