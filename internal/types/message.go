// Package types provides type definitions for structured data used throughout the leadscout system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Message roles used in the pipeline conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in the pipeline conversation.
// The user's query is the first message; the final summary is appended
// as the last message on success.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
