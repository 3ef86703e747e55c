// Package types provides type definitions for structured data used throughout the leadscout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Result is the envelope returned to callers of the agent entry point.
// On success, Summary/CompanyDomain/CompanyData/Leads are populated.
// On failure, Error carries the stable short code and Message a
// human-readable description; Summary is absent.
type Result struct {
	Success       bool         `json:"success"`
	Summary       string       `json:"summary,omitempty"`
	CompanyDomain string       `json:"company_domain,omitempty"`
	CompanyData   *CompanyInfo `json:"company_data,omitempty"`
	Leads         []Lead       `json:"leads,omitempty"`
	Error         string       `json:"error,omitempty"`
	Message       string       `json:"message,omitempty"`
}
