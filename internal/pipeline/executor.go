package pipeline

import (
	"context"

	"github.com/jonathan/leadscout/internal/enrich"
	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/search"
)

// DefaultMaxSearchResults bounds the result count requested from the search
// capability per step.
const DefaultMaxSearchResults = 5

// maxDispatches caps the executor loop. The chain is at most five steps;
// anything past this indicates a step emitted a bogus tag.
const maxDispatches = 8

// ProgressEvent reports a step transition to an observer.
type ProgressEvent struct {
	RunID   string `json:"run_id"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressFunc is called before each step runs and once on completion.
type ProgressFunc func(event ProgressEvent)

// Executor runs the fixed step chain over one State. It holds the three
// external capabilities and dispatches on the state's current tag; it has no
// state of its own, so one Executor may serve concurrent invocations.
type Executor struct {
	LLM    llm.Client
	Search search.Searcher
	Enrich enrich.Client

	// MaxSearchResults limits search capability calls; zero means default.
	MaxSearchResults int

	// OnProgress, when set, receives step transition events.
	OnProgress ProgressFunc
}

type stepFunc func(ctx context.Context, st *State) Update

// Run executes steps starting from the state's current tag until a step
// emits the terminal tag or sets an error. The (possibly error-bearing)
// final state is returned; Run itself never fails.
func (e *Executor) Run(ctx context.Context, st *State) *State {
	steps := map[StepTag]stepFunc{
		StepResolveQuery:  e.resolveQuery,
		StepResolveDomain: e.resolveDomain,
		StepEnrichCompany: e.enrichCompany,
		StepSearchLeads:   e.searchLeads,
		StepSummarize:     e.summarize,
	}

	for i := 0; st.Current != StepDone; i++ {
		if i >= maxDispatches {
			st.apply(fail(validationErr(CodeUnknownStep, "step limit exceeded at %q", st.Current)))
			break
		}

		step, ok := steps[st.Current]
		if !ok {
			st.apply(fail(validationErr(CodeUnknownStep, "no step registered for tag %q", st.Current)))
			break
		}

		e.emit(st, string(st.Current), "running")
		st.apply(step(ctx, st))
	}

	if st.Err != nil {
		e.emit(st, string(StepDone), "failed: "+st.Err.Code)
	} else {
		e.emit(st, string(StepDone), "completed")
	}
	return st
}

func (e *Executor) emit(st *State, step, message string) {
	if e.OnProgress != nil {
		e.OnProgress(ProgressEvent{
			RunID:   st.RunID.String(),
			Step:    step,
			Message: message,
		})
	}
}

func (e *Executor) maxResults() int {
	if e.MaxSearchResults > 0 {
		return e.MaxSearchResults
	}
	return DefaultMaxSearchResults
}
