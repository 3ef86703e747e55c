package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/leadscout/internal/enrich"
	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/pipeline"
	"github.com/jonathan/leadscout/internal/search"
)

// fakeLLM answers prompts by matching fixed template phrases, so each prompt
// in the chain gets an unambiguous canned response.
type fakeLLM struct {
	extractCompany string
	pickDomain     string
	extractLeads   string
	summary        string
}

func (f *fakeLLM) respond(prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "company identification assistant"):
		return f.extractCompany, nil
	case strings.Contains(prompt, "official website of a company named"):
		return f.pickDomain, nil
	case strings.Contains(prompt, "extracting engineering leadership contacts"):
		return f.extractLeads, nil
	default:
		return f.summary, nil
	}
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.respond(prompt)
}

func (f *fakeLLM) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.respond(prompt)
}

func (f *fakeLLM) Close() error { return nil }

type fakeSearcher struct {
	leads []search.Result
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) (*search.Response, error) {
	if strings.Contains(query, "site:linkedin.com/in") {
		return &search.Response{Query: query, Results: f.leads}, nil
	}
	return &search.Response{Query: query}, nil
}

// enrichServer serves the enrichment API from a canned handler.
func enrichServer(t *testing.T, handler http.HandlerFunc) *enrich.HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := enrich.NewHTTPClient(srv.URL, "test-key")
	require.NoError(t, err)
	return client
}

func c2foLLM() *fakeLLM {
	return &fakeLLM{
		extractCompany: `{"company_domain": "c2fo.com", "company_name": "C2FO", "found": true}`,
		extractLeads:   `[{"name": "Jane Doe", "role": "CTO", "linkedin": "https://linkedin.com/in/janedoe"}, {"name": "John Smith", "role": "VP of Engineering", "linkedin": "https://linkedin.com/in/johnsmith"}]`,
		summary:        "C2FO is a working capital marketplace. Engineering is led by CTO Jane Doe.",
	}
}

func TestRunSuccess(t *testing.T) {
	enricher := enrichServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c2fo.com", r.URL.Query().Get("domain"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "C2FO", "domain": "c2fo.com", "industry": "Financial Services"}`))
	})
	searcher := &fakeSearcher{leads: []search.Result{
		{Title: "Jane Doe - CTO - C2FO | LinkedIn", URL: "https://linkedin.com/in/janedoe"},
		{Title: "John Smith - VP of Engineering - C2FO | LinkedIn", URL: "https://linkedin.com/in/johnsmith"},
	}}

	a := NewWithCapabilities(c2foLLM(), searcher, enricher, Options{})
	res, err := a.Run(t.Context(), "Find engineering leads at c2fo.com")
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.True(t, res.Success)
	assert.Equal(t, "c2fo.com", res.CompanyDomain)
	require.NotNil(t, res.CompanyData)
	assert.Equal(t, "C2FO", res.CompanyData.Name)
	assert.Equal(t, "Financial Services", res.CompanyData.Industry)

	require.Len(t, res.Leads, 2)
	assert.Equal(t, "Jane Doe", res.Leads[0].Name)
	assert.Equal(t, "CTO", res.Leads[0].Role)

	assert.Contains(t, res.Summary, "C2FO")
	assert.Empty(t, res.Error)
	assert.Empty(t, res.Message)
}

func TestRunCompanyNotFound(t *testing.T) {
	enricher := enrichServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "not found"}`, http.StatusNotFound)
	})

	a := NewWithCapabilities(c2foLLM(), &fakeSearcher{}, enricher, Options{})
	res, err := a.Run(t.Context(), "Find engineering leads at c2fo.com")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "COMPANY_NOT_FOUND", res.Error)
	assert.NotEmpty(t, res.Message)
	assert.Empty(t, res.Summary, "failed runs produce no summary")
	assert.Nil(t, res.CompanyData)
}

// A hung enrichment provider must surface as a transport error, not as
// company-not-found.
func TestRunEnrichmentTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"name": "C2FO", "domain": "c2fo.com"}`))
	}))
	t.Cleanup(srv.Close)
	enricher, err := enrich.NewHTTPClient(srv.URL, "test-key", enrich.WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	a := NewWithCapabilities(c2foLLM(), &fakeSearcher{}, enricher, Options{})
	res, err := a.Run(t.Context(), "Find engineering leads at c2fo.com")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "ENRICH_API_ERROR", res.Error)
}

func TestRunEmptyQuery(t *testing.T) {
	a := NewWithCapabilities(c2foLLM(), &fakeSearcher{}, &timeoutFreeEnricher{}, Options{})
	res, err := a.Run(t.Context(), "   ")
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, "EMPTY_QUERY", res.Error)
}

// timeoutFreeEnricher never gets called in validation-failure tests.
type timeoutFreeEnricher struct{}

func (*timeoutFreeEnricher) Lookup(_ context.Context, domain string) (*enrich.Organization, error) {
	return nil, &enrich.NotFoundError{Domain: domain}
}

func TestRunZeroLeads(t *testing.T) {
	enricher := enrichServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "C2FO", "domain": "c2fo.com"}`))
	})

	a := NewWithCapabilities(c2foLLM(), &fakeSearcher{leads: nil}, enricher, Options{})
	res, err := a.Run(t.Context(), "Find engineering leads at c2fo.com")
	require.NoError(t, err)

	assert.True(t, res.Success, "zero lead results is a valid outcome")
	assert.Empty(t, res.Leads)
	assert.NotEmpty(t, res.Summary)
}

func TestRunForwardsProgress(t *testing.T) {
	enricher := enrichServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name": "C2FO", "domain": "c2fo.com"}`))
	})

	var events []pipeline.ProgressEvent
	a := NewWithCapabilities(c2foLLM(), &fakeSearcher{}, enricher, Options{
		OnProgress: func(ev pipeline.ProgressEvent) { events = append(events, ev) },
	})

	_, err := a.Run(t.Context(), "Find engineering leads at c2fo.com")
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, string(pipeline.StepResolveQuery), events[0].Step)
	assert.Equal(t, string(pipeline.StepDone), events[len(events)-1].Step)
}
