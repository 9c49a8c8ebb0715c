// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/types"
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
		line = truncate(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most max runes, ellipsis included. Slicing by
// rune keeps multibyte characters (dashes, bullets) intact.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// PrintAnalysis outputs a human-readable summary of one document analysis.
func (p *Printer) PrintAnalysis(title string, result types.AnalysisResult) {
	var sb strings.Builder

	if result.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", result.Location))
	}
	sb.WriteString(fmt.Sprintf("Capabilities: %d\n", result.Capabilities.Len()))

	displays := result.Capabilities.Displays()
	count := min(len(displays), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", displays[i]))
	}
	if len(displays) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(displays)-maxItemsToShow))
	}
	sb.WriteString("\n")

	writePeriods(&sb, "Education", result.Education)
	writePeriods(&sb, "Experience", result.Experience)

	if len(result.ExperienceGaps) > 0 {
		sb.WriteString("Employment gaps:\n")
		for _, gap := range result.ExperienceGaps {
			sb.WriteString(fmt.Sprintf("  %d month(s) between %s and %s\n",
				gap.Months, gap.After.Label, gap.Before.Label))
		}
	}
	if result.EducationToFirstJobGap != nil {
		sb.WriteString(fmt.Sprintf("Education to first job: %d month(s)\n", *result.EducationToFirstJobGap))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func writePeriods(sb *strings.Builder, heading string, periods []types.Period) {
	if len(periods) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("%s:\n", heading))
	count := min(len(periods), maxItemsToShow)
	for i := 0; i < count; i++ {
		period := periods[i]
		label := truncate(period.Label, 30)
		sb.WriteString(fmt.Sprintf("  %s — %s  %s\n", period.Start, period.End, label))
	}
	if len(periods) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(periods)-maxItemsToShow))
	}
	sb.WriteString("\n")
}

// PrintReport outputs the top match results with scores and matched
// capabilities.
func (p *Printer) PrintReport(report matching.Report) {
	if len(report.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run: %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Results: %d\n\n", len(report.Results)))

	count := min(len(report.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := report.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.RequirementID))
		if result.Failed {
			sb.WriteString(fmt.Sprintf("    FAILED: %s\n", truncate(result.Error, 40)))
			continue
		}
		sb.WriteString(fmt.Sprintf("    Score: %.2f\n", result.Score))
		if matched := result.Matched.Displays(); len(matched) > 0 {
			sb.WriteString(fmt.Sprintf("    Matched: %s\n", truncate(strings.Join(matched, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(report.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more results", len(report.Results)-maxItemsToShow))
	}

	p.printBox("MATCH RESULTS", sb.String())
}
