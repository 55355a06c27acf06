// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
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

// PrintJobRequirement outputs a human-readable summary of the normalized JD.
func (p *Printer) PrintJobRequirement(jd *types.JobRequirement) {
	if jd == nil {
		return
	}

	var sb strings.Builder

	if jd.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Role:       %s\n", jd.JobTitle))
	}
	if jd.Experience != "" {
		sb.WriteString(fmt.Sprintf("Experience: %s\n", jd.Experience))
	}
	sb.WriteString("\n")

	for _, section := range []struct {
		label string
		items []string
	}{
		{"Skills", jd.Skills},
		{"Technologies", jd.Technologies},
		{"Tools", jd.Tools},
	} {
		if len(section.items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", section.label))
		count := min(len(section.items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", section.items[i]))
		}
		if len(section.items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(section.items)-maxItemsToShow))
		}
	}

	p.printBox("JOB REQUIREMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs the category scores and the final score.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	scores := result.ScoreMap()
	for _, key := range types.ScoreKeys {
		label := strings.TrimSuffix(key, "_score")
		sb.WriteString(fmt.Sprintf("%-22s %3d\n", label, scores[key]))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-22s %3d\n", "FINAL", result.FinalScore))
	sb.WriteString(fmt.Sprintf("\nExperience: %.2f years", result.Details.TotalExperienceYears))

	p.printBox("MATCH RESULT", sb.String())
}

// PrintMatchedItems outputs per-category matched and missing requirement lists.
func (p *Printer) PrintMatchedItems(result *types.MatchResult) {
	if result == nil || len(result.MatchedItems) == 0 {
		return
	}

	var sb strings.Builder
	first := true
	for _, category := range types.ScoringCategories {
		matches, ok := result.MatchedItems[category]
		if !ok || (len(matches.Matched) == 0 && len(matches.Missing) == 0) {
			continue
		}
		if !first {
			sb.WriteString("\n")
		}
		first = false

		sb.WriteString(fmt.Sprintf("%s (%d/%d):\n", category,
			len(matches.Matched), len(matches.Matched)+len(matches.Missing)))
		if len(matches.Matched) > 0 {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", joinTruncated(matches.Matched, 45)))
		}
		if len(matches.Missing) > 0 {
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", joinTruncated(matches.Missing, 45)))
		}
	}

	p.printBox("MATCHED ITEMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintNotes outputs the audit notes when present.
func (p *Printer) PrintNotes(result *types.MatchResult) {
	if result == nil || result.Notes == "" {
		return
	}

	// Wrap notes to the box width
	var sb strings.Builder
	line := ""
	for _, word := range strings.Fields(result.Notes) {
		if len(line)+len(word)+1 > boxWidth-6 {
			sb.WriteString(line + "\n")
			line = word
			continue
		}
		if line == "" {
			line = word
		} else {
			line += " " + word
		}
	}
	sb.WriteString(line)

	p.printBox("NOTES", sb.String())
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
