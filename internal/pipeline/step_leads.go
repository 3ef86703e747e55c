package pipeline

import (
	"context"
	"fmt"

	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/prompts"
	"github.com/jonathan/leadscout/internal/search"
	"github.com/jonathan/leadscout/internal/types"
)

// leadRoleKeywords are the engineering-leadership titles targeted by the
// lead search query.
const leadRoleKeywords = `("CTO" OR "VP of Engineering" OR "VP Engineering" OR "Head of Engineering")`

// searchLeads looks for engineering-leadership people at the company on a
// professional network and extracts structured leads from the results.
// Zero results is valid business output, not a failure: the step advances
// with an empty lead list. Extraction itself is best-effort and degrades to
// placeholder leads rather than aborting the pipeline.
func (e *Executor) searchLeads(ctx context.Context, st *State) Update {
	if st.CompanyInfo == nil || st.CompanyInfo.Name == "" {
		return fail(validationErr(CodeMissingInput, "lead search requires an enriched company record"))
	}
	company := st.CompanyInfo.Name

	query := fmt.Sprintf(`site:linkedin.com/in "%s" %s`, company, leadRoleKeywords)
	resp, err := e.Search.Search(ctx, query, e.maxResults())
	if err != nil {
		return fail(apiErr(CodeSearchAPIError, "lead search failed: %v", err))
	}

	if len(resp.Results) == 0 {
		return Update{LeadsSet: true, Leads: []types.Lead{}, Next: StepSummarize}
	}

	prompt := prompts.Format(prompts.MustGet("leadgen.json", "extract-leads"), map[string]string{
		"Company": company,
		"Results": search.FormatResults(resp.Results),
	})

	raw, genErr := e.LLM.GenerateJSON(ctx, prompt, llm.TierStandard)
	if genErr != nil {
		// Extraction is best-effort: a failed model call degrades to
		// placeholders built from the raw results.
		return Update{LeadsSet: true, Leads: PlaceholderLeads(resp.Results), Next: StepSummarize}
	}

	return Update{LeadsSet: true, Leads: ParseLeads(raw, resp.Results), Next: StepSummarize}
}
