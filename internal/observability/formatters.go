// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/leadscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCompany outputs a human-readable summary of the enriched company record.
func (p *Printer) PrintCompany(info *types.CompanyInfo) {
	if info == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:  %s\n", info.Name))
	sb.WriteString(fmt.Sprintf("Domain:   %s\n", info.Domain))
	if info.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", info.Industry))
	}
	if info.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	}
	if info.FoundedYear > 0 {
		sb.WriteString(fmt.Sprintf("Founded:  %d\n", info.FoundedYear))
	}
	if info.Headcount > 0 {
		sb.WriteString(fmt.Sprintf("Headcount: %d\n", info.Headcount))
	}
	if info.FundingStage != "" {
		sb.WriteString(fmt.Sprintf("Funding:  %s", info.FundingStage))
		if info.TotalFunding != "" {
			sb.WriteString(fmt.Sprintf(" (%s raised)", info.TotalFunding))
		}
		sb.WriteString("\n")
	}

	if len(info.TechStack) > 0 {
		stack := strings.Join(info.TechStack, ", ")
		if len(stack) > 48 {
			stack = stack[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("Tech:     %s\n", stack))
	}

	p.printBox("COMPANY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLeads outputs the discovered engineering-leadership leads.
func (p *Printer) PrintLeads(leads []types.Lead) {
	var sb strings.Builder

	if len(leads) == 0 {
		sb.WriteString("No leads found.")
		p.printBox("LEADS", sb.String())
		return
	}

	sb.WriteString(fmt.Sprintf("Found %d leads:\n\n", len(leads)))

	count := min(len(leads), maxItemsToShow)
	for i := 0; i < count; i++ {
		lead := leads[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", lead.Name, lead.Role))
		if lead.LinkedIn != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", lead.LinkedIn))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(leads) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more leads", len(leads)-maxItemsToShow))
	}

	p.printBox("LEADS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the generated briefing text.
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}
	p.printBox("SUMMARY", wrapText(summary, boxWidth-4))
}

// wrapText breaks text into lines no longer than width, on word boundaries.
func wrapText(text string, width int) string {
	var sb strings.Builder
	line := 0
	for _, word := range strings.Fields(text) {
		if line > 0 && line+1+len(word) > width {
			sb.WriteString("\n")
			line = 0
		} else if line > 0 {
			sb.WriteString(" ")
			line++
		}
		sb.WriteString(word)
		line += len(word)
	}
	return sb.String()
}
