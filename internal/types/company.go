// Package types provides type definitions for structured data used throughout the leadscout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanyInfo is the structured company record produced by the enrichment step.
// Name and Domain are always present for an enriched record; the remaining
// fields are optional and the summarization step substitutes "not specified"
// for anything missing.
type CompanyInfo struct {
	Name          string         `json:"name"`
	Domain        string         `json:"domain"`
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

	// Extra holds provider fields that do not map onto the named columns,
	// preserved verbatim for the result envelope.
	Extra map[string]any `json:"extra,omitempty"`
}
