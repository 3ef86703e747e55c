// Package search provides the web-search capability used by the pipeline.
// It wraps the Google Programmable Search API behind a small interface so
// steps can be tested against stub searchers.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// DefaultMaxResults is used when the caller passes a non-positive limit.
const DefaultMaxResults = 5

// maxAPIResults is the hard per-request cap of the Custom Search API.
const maxAPIResults = 10

// Result is a single web search hit.
type Result struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score,omitempty"`
}

// Response holds the ordered results for one query.
type Response struct {
	Query   string   `json:"query"`
	Answer  string   `json:"answer,omitempty"`
	Results []Result `json:"results"`
}

// Searcher is the web-search capability boundary.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) (*Response, error)
}

// GoogleSearcher implements Searcher using the Google Programmable Search API.
type GoogleSearcher struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleSearcher creates a searcher bound to a Programmable Search engine ID.
func NewGoogleSearcher(ctx context.Context, apiKey, cx string) (*GoogleSearcher, error) {
	if apiKey == "" || cx == "" {
		return nil, fmt.Errorf("search API key and engine ID are required")
	}
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleSearcher{svc: svc, cx: cx}, nil
}

// Search runs one query and returns up to maxResults ordered results.
func (g *GoogleSearcher) Search(ctx context.Context, query string, maxResults int) (*Response, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	if maxResults > maxAPIResults {
		maxResults = maxAPIResults
	}

	resp, err := g.svc.Cse.List().Context(ctx).Cx(g.cx).Q(query).Num(int64(maxResults)).Do()
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	return fromCustomSearch(query, resp), nil
}

// fromCustomSearch maps a raw API response onto the capability's result shape.
func fromCustomSearch(query string, resp *customsearch.Search) *Response {
	out := &Response{Query: query, Results: []Result{}}
	if resp == nil {
		return out
	}
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		content := item.Snippet
		if content == "" && item.HtmlSnippet != "" {
			content = SnippetText(item.HtmlSnippet)
		}
		out.Results = append(out.Results, Result{
			Title:   item.Title,
			URL:     item.Link,
			Content: content,
		})
	}
	return out
}

// SnippetText converts an HTML search snippet into plain text.
// Falls back to the raw input if the snippet cannot be parsed.
func SnippetText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}
	return strings.TrimSpace(doc.Text())
}

// FormatResults renders results as a numbered list for LLM prompts.
func FormatResults(results []Result) string {
	var sb strings.Builder
	for i, r := range results {
		fmt.Fprintf(&sb, "%d. %s\n   URL: %s\n", i+1, r.Title, r.URL)
		if r.Content != "" {
			fmt.Fprintf(&sb, "   %s\n", r.Content)
		}
	}
	return sb.String()
}
