// Package agent is the entry point of the lead-research system. It wires the
// external capabilities into a pipeline executor and converts final pipeline
// states into the result envelope returned to callers.
package agent

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/leadscout/internal/config"
	"github.com/jonathan/leadscout/internal/enrich"
	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/pipeline"
	"github.com/jonathan/leadscout/internal/search"
	"github.com/jonathan/leadscout/internal/types"
)

// Options configures agent behavior beyond credentials.
type Options struct {
	// MaxSearchResults limits web search calls; zero means the pipeline default.
	MaxSearchResults int

	// Verbose enables step-by-step progress logging.
	Verbose bool

	// OnProgress, when set, receives pipeline progress events. It is called
	// in addition to verbose logging.
	OnProgress pipeline.ProgressFunc
}

// Agent runs lead-research queries. One Agent may serve concurrent queries;
// each Run owns its own pipeline state.
type Agent struct {
	exec    *pipeline.Executor
	llm     llm.Client
	verbose bool
}

// New builds an agent backed by the real Gemini, Google Search, and
// enrichment clients. Credentials must already be validated.
func New(ctx context.Context, creds *config.Credentials, opts Options) (*Agent, error) {
	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), creds.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	searcher, err := search.NewGoogleSearcher(ctx, creds.SearchAPIKey, creds.SearchCX)
	if err != nil {
		_ = llmClient.Close()
		return nil, fmt.Errorf("failed to create searcher: %w", err)
	}

	enricher, err := enrich.NewHTTPClient(creds.EnrichBaseURL, creds.EnrichAPIKey)
	if err != nil {
		_ = llmClient.Close()
		return nil, fmt.Errorf("failed to create enrichment client: %w", err)
	}

	a := NewWithCapabilities(llmClient, searcher, enricher, opts)
	a.llm = llmClient
	return a, nil
}

// NewWithCapabilities builds an agent over explicit capability
// implementations. Used by tests and by callers that manage client
// lifecycles themselves.
func NewWithCapabilities(llmClient llm.Client, searcher search.Searcher, enricher enrich.Client, opts Options) *Agent {
	a := &Agent{
		exec: &pipeline.Executor{
			LLM:              llmClient,
			Search:           searcher,
			Enrich:           enricher,
			MaxSearchResults: opts.MaxSearchResults,
		},
		verbose: opts.Verbose,
	}
	a.exec.OnProgress = a.progressFunc(opts.OnProgress)
	return a
}

// Run executes one lead-research query to completion. Pipeline failures are
// returned as data in the envelope; the error return is reserved for context
// cancellation and is nil otherwise.
func (a *Agent) Run(ctx context.Context, query string) (*types.Result, error) {
	return a.RunStream(ctx, query, nil)
}

// RunStream is Run with a per-call progress observer, called in addition to
// any observer set at construction.
func (a *Agent) RunStream(ctx context.Context, query string, onProgress pipeline.ProgressFunc) (*types.Result, error) {
	st := pipeline.NewState(query)
	if a.verbose {
		log.Printf("[AGENT] Starting run %s for query: %s", st.RunID, query)
	}

	// The executor is stateless, so a shallow copy safely carries a
	// per-call progress observer.
	exec := *a.exec
	if onProgress != nil {
		base := exec.OnProgress
		exec.OnProgress = func(ev pipeline.ProgressEvent) {
			if base != nil {
				base(ev)
			}
			onProgress(ev)
		}
	}

	st = exec.Run(ctx, st)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return toResult(st), nil
}

// Close releases the underlying LLM client, if the agent owns one.
func (a *Agent) Close() error {
	if a.llm != nil {
		return a.llm.Close()
	}
	return nil
}

func (a *Agent) progressFunc(next pipeline.ProgressFunc) pipeline.ProgressFunc {
	if !a.verbose && next == nil {
		return nil
	}
	return func(ev pipeline.ProgressEvent) {
		if a.verbose {
			log.Printf("[AGENT] run=%s step=%s %s", ev.RunID, ev.Step, ev.Message)
		}
		if next != nil {
			next(ev)
		}
	}
}

// toResult converts a final pipeline state into the caller-facing envelope.
// The envelope is the only shape that crosses the agent boundary: errors
// travel as code plus message, never as Go error values.
func toResult(st *pipeline.State) *types.Result {
	if st.Err != nil {
		return &types.Result{
			Success: false,
			Error:   st.Err.Code,
			Message: st.Err.Message,
		}
	}

	res := &types.Result{
		Success:       true,
		CompanyDomain: st.CompanyDomain,
		CompanyData:   st.CompanyInfo,
		Leads:         st.Leads,
	}
	if last := st.LastMessage(); last != nil && last.Role == types.RoleAssistant {
		res.Summary = last.Content
	}
	return res
}
