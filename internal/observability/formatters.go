// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/opportunity-scout/internal/types"
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

// PrintDiscoveryInput outputs a human-readable summary of the user profile.
func (p *Printer) PrintDiscoveryInput(input *types.DiscoveryInput) {
	if input == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills:      %s\n", strings.Join(input.Skills, ", ")))
	sb.WriteString(fmt.Sprintf("Time:        %s\n", input.TimeAvailability))
	sb.WriteString(fmt.Sprintf("Risk:        %s\n", input.RiskAppetite))
	sb.WriteString(fmt.Sprintf("Income goal: $%.0f/month\n", input.IncomeGoal))
	sb.WriteString(fmt.Sprintf("Work:        %s", input.WorkPreference))
	if input.Context != "" {
		context := input.Context
		if len(context) > 45 {
			context = context[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nContext:     %s", context))
	}

	p.printBox("DISCOVERY PROFILE", sb.String())
}

// PrintRankedOpportunities outputs the top N ranked opportunities with scores
// and categories.
func (p *Printer) PrintRankedOpportunities(result *types.DiscoveryResult) {
	if result == nil || len(result.Opportunities) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total opportunities ranked: %d\n\n", len(result.Opportunities)))

	count := min(len(result.Opportunities), maxItemsToShow)
	for i := 0; i < count; i++ {
		opp := result.Opportunities[i]
		title := opp.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f  [%s]\n", opp.MatchScore, opp.Category))
		if len(opp.SkillMatch.Matched) > 0 {
			skills := strings.Join(opp.SkillMatch.Matched, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if opp.TimeToFirstRevenue > 0 {
			sb.WriteString(fmt.Sprintf("    First revenue: ~%d days\n", opp.TimeToFirstRevenue))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Opportunities) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more opportunities", len(result.Opportunities)-maxItemsToShow))
	}

	p.printBox("TOP RANKED OPPORTUNITIES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMetrics outputs run statistics for one discovery call.
func (p *Printer) PrintMetrics(metrics *types.Metrics) {
	if metrics == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Sources searched: %d\n", metrics.SourcesSearched))
	sb.WriteString(fmt.Sprintf("Candidates found: %d\n", metrics.TotalFound))
	sb.WriteString(fmt.Sprintf("Match threshold:  %.0f\n", metrics.MatchThreshold))
	sb.WriteString(fmt.Sprintf("Processing time:  %s\n", metrics.ProcessingTime))
	if metrics.CacheHit {
		sb.WriteString("Served from cache")
	} else {
		sb.WriteString("Computed fresh")
	}

	p.printBox("RUN METRICS", sb.String())
}
