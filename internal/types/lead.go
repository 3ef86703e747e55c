// Package types provides type definitions for structured data used throughout the leadscout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Lead is a candidate engineering-leadership contact discovered via web search.
// Leads are immutable once created; the pipeline only appends them.
type Lead struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	LinkedIn string `json:"linkedin"`
	Email    string `json:"email,omitempty"`
}
