// Package pipeline implements the lead-research pipeline: a fixed linear
// chain of steps that resolves a company from a free-text query, enriches it,
// searches for engineering-leadership leads, and summarizes the findings.
// Each step reads from and writes partial updates to a single State value
// owned by one invocation.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/jonathan/leadscout/internal/types"
)

// StepTag identifies a pipeline step. Each step's update names the next tag;
// StepDone is the terminal tag.
type StepTag string

// Pipeline step tags, in execution order. StepResolveDomain only runs when
// the query named a company without an explicit domain.
const (
	StepResolveQuery  StepTag = "resolve_query"
	StepResolveDomain StepTag = "resolve_domain"
	StepEnrichCompany StepTag = "enrich_company"
	StepSearchLeads   StepTag = "search_leads"
	StepSummarize     StepTag = "summarize"
	StepDone          StepTag = "done"
)

// State is the accumulating record threaded through all steps of one
// invocation. Fields fill in monotonically as steps succeed; no State is
// shared across invocations.
type State struct {
	RunID uuid.UUID `json:"run_id"`

	// Conversation is append-only. The user's query is message 0; the final
	// summary is appended as the last message on success.
	Conversation []types.Message `json:"conversation"`

	CompanyName   string             `json:"company_name,omitempty"`
	CompanyDomain string             `json:"company_domain,omitempty"`
	CompanyInfo   *types.CompanyInfo `json:"company_info,omitempty"`

	// Leads is nil until the lead-search step has run; the step always sets
	// a non-nil slice, so downstream code can distinguish "not yet run"
	// from "ran, found none".
	Leads []types.Lead `json:"leads,omitempty"`

	Current StepTag    `json:"current_step"`
	Err     *StepError `json:"error,omitempty"`
}

// NewState seeds a fresh state from the caller's query string.
func NewState(query string) *State {
	return &State{
		RunID: uuid.New(),
		Conversation: []types.Message{
			{Role: types.RoleUser, Content: query},
		},
		Current: StepResolveQuery,
	}
}

// LastMessage returns the most recent conversation message, or nil when the
// conversation is empty.
func (s *State) LastMessage() *types.Message {
	if len(s.Conversation) == 0 {
		return nil
	}
	return &s.Conversation[len(s.Conversation)-1]
}

// Update is the partial state change a step returns. Only set fields are
// merged; everything else in the State is preserved.
type Update struct {
	CompanyName   *string
	CompanyDomain *string
	CompanyInfo   *types.CompanyInfo

	// Leads are appended to the state's lead list. LeadsSet marks the list
	// as produced even when Leads is empty.
	Leads    []types.Lead
	LeadsSet bool

	// AppendMessage adds one message to the conversation.
	AppendMessage *types.Message

	// Next names the step to dispatch after the merge.
	Next StepTag

	// Err marks the pipeline failed; the executor stops after merging.
	Err *StepError
}

// apply merges a partial update into the state. An error update always
// forces the terminal tag regardless of Next.
func (s *State) apply(u Update) {
	if u.CompanyName != nil {
		s.CompanyName = *u.CompanyName
	}
	if u.CompanyDomain != nil {
		s.CompanyDomain = *u.CompanyDomain
	}
	if u.CompanyInfo != nil {
		s.CompanyInfo = u.CompanyInfo
	}
	if u.LeadsSet {
		if s.Leads == nil {
			s.Leads = []types.Lead{}
		}
		s.Leads = append(s.Leads, u.Leads...)
	}
	if u.AppendMessage != nil {
		s.Conversation = append(s.Conversation, *u.AppendMessage)
	}

	s.Current = u.Next
	if u.Err != nil {
		s.Err = u.Err
		s.Current = StepDone
	}
}

// fail builds the uniform error update: terminal tag plus the error as data.
func fail(err *StepError) Update {
	return Update{Err: err, Next: StepDone}
}
