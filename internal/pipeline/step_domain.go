package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/prompts"
	"github.com/jonathan/leadscout/internal/search"
)

// pickDomainResponse is the expected JSON shape from the pick-domain prompt.
type pickDomainResponse struct {
	Domain string `json:"domain"`
}

// resolveDomain finds the company's official website domain: one web search
// for the company name, then one LLM call to pick the official domain out of
// the results, excluding aggregator sites.
func (e *Executor) resolveDomain(ctx context.Context, st *State) Update {
	if st.CompanyName == "" {
		return fail(validationErr(CodeMissingInput, "domain resolution requires a company name"))
	}

	resp, err := e.Search.Search(ctx, fmt.Sprintf("%s official website", st.CompanyName), e.maxResults())
	if err != nil {
		return fail(apiErr(CodeSearchAPIError, "website search failed: %v", err))
	}
	if len(resp.Results) == 0 {
		return fail(validationErr(CodeDomainNotFound, "no search results for company %q", st.CompanyName))
	}

	prompt := prompts.Format(prompts.MustGet("leadgen.json", "pick-domain"), map[string]string{
		"Company":  st.CompanyName,
		"Results":  search.FormatResults(resp.Results),
		"Excluded": AggregatorList(),
	})

	raw, err := e.LLM.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return fail(apiErr(CodeLLMAPIError, "domain selection failed: %v", err))
	}

	var picked pickDomainResponse
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &picked); err != nil {
		return fail(apiErr(CodeLLMAPIError, "unparseable domain selection response: %v", err))
	}
	if picked.Domain == "" {
		return fail(validationErr(CodeDomainNotFound, "no official domain found for %q", st.CompanyName))
	}

	domain := NormalizeDomain(picked.Domain)
	if !IsValidDomain(domain) {
		return fail(validationErr(CodeInvalidDomain, "selected domain %q is not a valid domain", picked.Domain))
	}
	if IsAggregatorDomain(domain) {
		return fail(validationErr(CodeDomainNotFound, "selected domain %q is a third-party aggregator", domain))
	}

	return Update{CompanyDomain: &domain, Next: StepEnrichCompany}
}
