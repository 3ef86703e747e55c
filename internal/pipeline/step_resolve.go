package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/prompts"
)

// extractCompanyResponse is the expected JSON shape from the extract-company prompt.
type extractCompanyResponse struct {
	CompanyDomain string `json:"company_domain"`
	CompanyName   string `json:"company_name"`
	Found         bool   `json:"found"`
}

// resolveQuery extracts the target company from the user's query. When the
// query literally contains a domain the pipeline skips domain resolution and
// goes straight to enrichment; otherwise the extracted name is resolved by
// the next step.
func (e *Executor) resolveQuery(ctx context.Context, st *State) Update {
	last := st.LastMessage()
	if last == nil || strings.TrimSpace(last.Content) == "" {
		return fail(validationErr(CodeEmptyQuery, "query is empty"))
	}
	query := strings.TrimSpace(last.Content)

	prompt := prompts.Format(prompts.MustGet("leadgen.json", "extract-company"), map[string]string{
		"Query": query,
	})

	raw, err := e.LLM.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return fail(apiErr(CodeLLMAPIError, "company extraction failed: %v", err))
	}

	var resp extractCompanyResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &resp); err != nil {
		return fail(apiErr(CodeLLMAPIError, "unparseable company extraction response: %v", err))
	}

	if !resp.Found || (resp.CompanyDomain == "" && resp.CompanyName == "") {
		return fail(validationErr(CodeCompanyNotIdentified, "no company identified in query"))
	}

	upd := Update{}
	if resp.CompanyName != "" {
		name := strings.TrimSpace(resp.CompanyName)
		upd.CompanyName = &name
	}

	if resp.CompanyDomain != "" {
		domain := NormalizeDomain(resp.CompanyDomain)
		if !IsValidDomain(domain) {
			return fail(validationErr(CodeInvalidDomain, "extracted domain %q is not a valid domain", resp.CompanyDomain))
		}
		upd.CompanyDomain = &domain
		upd.Next = StepEnrichCompany
		return upd
	}

	if upd.CompanyName == nil || *upd.CompanyName == "" {
		return fail(validationErr(CodeCompanyNotIdentified, "no company identified in query"))
	}
	upd.Next = StepResolveDomain
	return upd
}
