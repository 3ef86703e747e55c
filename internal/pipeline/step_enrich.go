package pipeline

import (
	"context"
)

// enrichCompany resolves the domain into a structured company record via the
// enrichment capability. The domain is re-validated defensively even though
// preceding steps only store validated domains.
func (e *Executor) enrichCompany(ctx context.Context, st *State) Update {
	if st.CompanyDomain == "" {
		return fail(validationErr(CodeMissingInput, "enrichment requires a company domain"))
	}
	if !IsValidDomain(st.CompanyDomain) {
		return fail(validationErr(CodeInvalidDomain, "domain %q is not a valid domain", st.CompanyDomain))
	}

	org, err := e.Enrich.Lookup(ctx, st.CompanyDomain)
	if err != nil {
		return fail(fromEnrichError(err))
	}

	return Update{CompanyInfo: org.ToCompanyInfo(), Next: StepSearchLeads}
}
