// Package enrich provides the company-enrichment capability: resolving a web
// domain into a structured firmographic record over a provider's HTTPS API.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/leadscout/internal/types"
)

// DefaultTimeout bounds a single enrichment call so the pipeline cannot hang
// indefinitely on this I/O.
const DefaultTimeout = 10 * time.Second

// Client is the company-enrichment capability boundary.
type Client interface {
	// Lookup resolves a domain into an organization record. It returns
	// *NotFoundError when the provider has no record, *InvalidRecordError
	// when the record is missing required fields, and *APIError for
	// transport or status failures.
	Lookup(ctx context.Context, domain string) (*Organization, error)
}

// Organization is the provider's wire record for a company.
type Organization struct {
	Name          string         `json:"name" validate:"required"`
	Domain        string         `json:"domain" validate:"required"`
	Description   string         `json:"description,omitempty"`
	Industry      string         `json:"industry,omitempty"`
	FoundedYear   int            `json:"founded_year,omitempty"`
	Headcount     int            `json:"headcount,omitempty"`
	Location      string         `json:"location,omitempty"`
	AnnualRevenue string         `json:"annual_revenue,omitempty"`
	TotalFunding  string         `json:"total_funding,omitempty"`
	FundingStage  string         `json:"funding_stage,omitempty"`
	TechStack     []string       `json:"tech_stack,omitempty"`
	Departments   map[string]int `json:"departments,omitempty"`
	Extra         map[string]any `json:"extra,omitempty"`

	// Error is set by providers that report not-found in a 200 body.
	Error string `json:"error,omitempty"`
}

// ToCompanyInfo converts the wire record into the pipeline's company type.
func (o *Organization) ToCompanyInfo() *types.CompanyInfo {
	return &types.CompanyInfo{
		Name:          o.Name,
		Domain:        o.Domain,
		Description:   o.Description,
		Industry:      o.Industry,
		FoundedYear:   o.FoundedYear,
		Headcount:     o.Headcount,
		Location:      o.Location,
		AnnualRevenue: o.AnnualRevenue,
		TotalFunding:  o.TotalFunding,
		FundingStage:  o.FundingStage,
		TechStack:     o.TechStack,
		Departments:   o.Departments,
		Extra:         o.Extra,
	}
}

// NotFoundError indicates the provider has no record for the domain.
type NotFoundError struct {
	Domain string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no company record for domain %s", e.Domain)
}

// InvalidRecordError indicates the provider returned a record missing
// required fields.
type InvalidRecordError struct {
	Domain  string
	Missing []string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("incomplete company record for domain %s: missing %v", e.Domain, e.Missing)
}

// APIError indicates a transport or status failure talking to the provider.
type APIError struct {
	Domain     string
	StatusCode int
	Message    string
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("enrichment API error for %s: %s: %v", e.Domain, e.Message, e.Cause)
	}
	return fmt.Sprintf("enrichment API error for %s: %s", e.Domain, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// HTTPClient implements Client against an enrichment provider's REST API.
type HTTPClient struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	validate *validator.Validate
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.client.Timeout = d
	}
}

// NewHTTPClient creates an enrichment client for the given provider base URL.
func NewHTTPClient(baseURL, apiKey string, opts ...Option) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("enrichment base URL is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("enrichment API key is required")
	}

	c := &HTTPClient{
		baseURL:  baseURL,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: DefaultTimeout},
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Lookup fetches the organization record for a domain.
func (c *HTTPClient) Lookup(ctx context.Context, domain string) (*Organization, error) {
	endpoint := fmt.Sprintf("%s/companies/find?domain=%s", c.baseURL, url.QueryEscape(domain))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &APIError{Domain: domain, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &APIError{Domain: domain, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{Domain: domain}
	case resp.StatusCode != http.StatusOK:
		return nil, &APIError{
			Domain:     domain,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var org Organization
	if err := json.NewDecoder(resp.Body).Decode(&org); err != nil {
		return nil, &APIError{Domain: domain, Message: "failed to decode response", Cause: err}
	}

	if org.Error != "" {
		return nil, &NotFoundError{Domain: domain}
	}

	if err := c.validate.Struct(&org); err != nil {
		var missing []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				missing = append(missing, fe.Field())
			}
		}
		return nil, &InvalidRecordError{Domain: domain, Missing: missing}
	}

	return &org, nil
}
