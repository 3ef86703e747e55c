package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/leadscout/internal/llm"
	"github.com/jonathan/leadscout/internal/prompts"
	"github.com/jonathan/leadscout/internal/types"
)

// notSpecified is the placeholder for enrichment fields the provider did not
// return. The step must not fail merely because optional fields are absent.
const notSpecified = "not specified"

// summarize renders everything the pipeline learned into one briefing via a
// single LLM call and appends it to the conversation. It is always the last
// successful step.
func (e *Executor) summarize(ctx context.Context, st *State) Update {
	if st.CompanyInfo == nil {
		return fail(validationErr(CodeMissingInput, "summarization requires an enriched company record"))
	}

	prompt := prompts.Format(prompts.MustGet("leadgen.json", "summarize"), map[string]string{
		"Details": companyDetails(st.CompanyInfo, st.CompanyDomain, st.Leads),
	})

	summary, err := e.LLM.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return fail(apiErr(CodeLLMAPIError, "summary generation failed: %v", err))
	}

	msg := types.Message{Role: types.RoleAssistant, Content: summary}
	return Update{AppendMessage: &msg, Next: StepDone}
}

// companyDetails enumerates every known field with explicit placeholders for
// anything missing.
func companyDetails(info *types.CompanyInfo, domain string, leads []types.Lead) string {
	var sb strings.Builder

	write := func(label, value string) {
		if value == "" {
			value = notSpecified
		}
		fmt.Fprintf(&sb, "%s: %s\n", label, value)
	}

	write("Company", info.Name)
	write("Website", domain)
	write("Description", info.Description)
	write("Industry", info.Industry)
	if info.FoundedYear > 0 {
		write("Founded", fmt.Sprintf("%d", info.FoundedYear))
	} else {
		write("Founded", "")
	}
	if info.Headcount > 0 {
		write("Headcount", fmt.Sprintf("%d", info.Headcount))
	} else {
		write("Headcount", "")
	}
	write("Location", info.Location)
	write("Annual revenue", info.AnnualRevenue)
	write("Total funding", info.TotalFunding)
	write("Funding stage", info.FundingStage)
	write("Technology stack", strings.Join(info.TechStack, ", "))

	if len(info.Departments) > 0 {
		var parts []string
		for dept, count := range info.Departments {
			parts = append(parts, fmt.Sprintf("%s: %d", dept, count))
		}
		write("Department headcounts", strings.Join(parts, ", "))
	} else {
		write("Department headcounts", "")
	}

	if len(leads) == 0 {
		write("Engineering leadership contacts", "none found")
	} else {
		sb.WriteString("Engineering leadership contacts:\n")
		for _, lead := range leads {
			fmt.Fprintf(&sb, "  - %s, %s (%s)\n", lead.Name, lead.Role, lead.LinkedIn)
		}
	}

	return sb.String()
}
