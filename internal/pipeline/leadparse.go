package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/schemas"
	"github.com/jonathan/leadscout/internal/search"
	"github.com/jonathan/leadscout/internal/types"
)

// maxPlaceholderLeads caps the placeholder fallback tier.
const maxPlaceholderLeads = 3

// placeholderRole labels placeholder leads whose title could not be extracted.
const placeholderRole = "Engineering Leadership"

// ParseLeads turns a model response into leads using a three-tier strategy:
// strict schema-validated parse, then an embedded-array parse, then
// placeholder construction from the raw search results. Each tier is a pure
// function so they are testable without a model.
func ParseLeads(raw string, results []search.Result) []types.Lead {
	if leads, err := ParseLeadsStrict(raw); err == nil {
		return leads
	}

	if arr, ok := ExtractJSONArray(raw); ok {
		if leads, err := ParseLeadsStrict(arr); err == nil {
			return leads
		}
	}

	return PlaceholderLeads(results)
}

// ParseLeadsStrict parses a JSON lead array, validating it against the lead
// schema before unmarshalling. The returned slice is never nil on success.
func ParseLeadsStrict(doc string) ([]types.Lead, error) {
	doc = llm.CleanJSONBlock(doc)
	if doc == "" {
		return nil, fmt.Errorf("empty document")
	}

	if err := schemas.ValidateLeads(doc); err != nil {
		return nil, err
	}

	leads := []types.Lead{}
	if err := json.Unmarshal([]byte(doc), &leads); err != nil {
		return nil, fmt.Errorf("failed to parse leads: %w", err)
	}
	return leads, nil
}

// ExtractJSONArray locates the outermost array-like substring in free text.
// It reports false when the text contains no bracketed span.
func ExtractJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// PlaceholderLeads builds generic leads directly from search results when
// structured extraction fails, capped at maxPlaceholderLeads.
func PlaceholderLeads(results []search.Result) []types.Lead {
	n := min(maxPlaceholderLeads, len(results))
	leads := make([]types.Lead, 0, n)
	for _, r := range results[:n] {
		leads = append(leads, types.Lead{
			Name:     nameFromTitle(r.Title),
			Role:     placeholderRole,
			LinkedIn: r.URL,
		})
	}
	return leads
}

// nameFromTitle strips the trailing site/role decoration from a search
// result title, e.g. "Jane Doe - CTO - C2FO | LinkedIn" -> "Jane Doe".
func nameFromTitle(title string) string {
	for _, sep := range []string{" - ", " – ", " | "} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}
