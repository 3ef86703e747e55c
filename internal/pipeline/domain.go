package pipeline

import (
	"net/url"
	"regexp"
	"strings"
)

// domainPattern enforces the canonical domain syntax: lowercase labels of
// [a-z0-9-] (1-63 chars, no leading/trailing hyphen), at least one dot, and
// a fully alphabetic TLD of 2+ characters.
var domainPattern = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,63}$`)

// IsValidDomain reports whether s already satisfies the domain syntax
// invariant. It does not normalize; callers normalize first so that valid
// domains round-trip unchanged.
func IsValidDomain(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	return domainPattern.MatchString(s)
}

// NormalizeDomain lowercases a raw domain-ish string and strips scheme,
// "www." prefix, path, port, and surrounding punctuation. The result is not
// guaranteed valid; callers must check IsValidDomain before storing it.
func NormalizeDomain(raw string) string {
	d := strings.ToLower(strings.TrimSpace(raw))

	if idx := strings.Index(d, "://"); idx >= 0 {
		d = d[idx+3:]
	}
	if idx := strings.IndexAny(d, "/?#"); idx >= 0 {
		d = d[:idx]
	}
	if idx := strings.Index(d, ":"); idx >= 0 {
		d = d[:idx]
	}
	d = strings.TrimPrefix(d, "www.")
	d = strings.Trim(d, ".,;:!\"' ")

	return d
}

// DomainFromURL extracts the normalized domain from a URL string, returning
// "" when the URL has no usable host.
func DomainFromURL(urlStr string) string {
	if urlStr == "" {
		return ""
	}
	if !strings.Contains(urlStr, "://") {
		urlStr = "https://" + urlStr
	}
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}
	return NormalizeDomain(parsed.Hostname())
}

// aggregatorDomains lists third-party sites that rank highly for company
// queries but are never the company's own website. The domain-resolution
// prompt excludes them and the step rejects them if the model picks one
// anyway.
var aggregatorDomains = []string{
	"linkedin.com",
	"crunchbase.com",
	"glassdoor.com",
	"indeed.com",
	"zoominfo.com",
	"pitchbook.com",
	"owler.com",
	"dnb.com",
	"apollo.io",
	"bloomberg.com",
	"wikipedia.org",
	"facebook.com",
	"instagram.com",
	"youtube.com",
	"twitter.com",
	"x.com",
}

// IsAggregatorDomain reports whether a normalized domain is (or is a
// subdomain of) a known third-party aggregator.
func IsAggregatorDomain(domain string) bool {
	for _, agg := range aggregatorDomains {
		if domain == agg || strings.HasSuffix(domain, "."+agg) {
			return true
		}
	}
	return false
}

// AggregatorList renders the exclusion list for LLM prompts.
func AggregatorList() string {
	return strings.Join(aggregatorDomains, ", ")
}
