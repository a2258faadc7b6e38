// Package observability provides Prometheus metrics for scoring and formatted
// output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
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

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to maxItemsToShow bullet lines under heading.
func writeList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(heading + ":\n")
	for _, item := range items[:min(len(items), maxItemsToShow)] {
		fmt.Fprintf(sb, "  • %s\n", item)
	}
	if len(items) > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", len(items)-maxItemsToShow)
	}
	sb.WriteString("\n")
}

// PrintATSResult outputs the score, breakdown, adjustments and flagged issues.
func (p *Printer) PrintATSResult(res *types.ATSResult) {
	if res == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Total:    %d/100 (%s)\n\n", res.TotalScore, res.Rating)

	sb.WriteString("Breakdown:\n")
	for _, c := range types.Categories {
		fmt.Fprintf(&sb, "  %-18s %2d/%d\n", c.Label(), res.ScoreBreakdown.Get(c), c.Max())
	}
	sb.WriteString("\n")

	if len(res.ScoreAdjustments) > 0 {
		sb.WriteString("Adjustments:\n")
		for _, a := range res.ScoreAdjustments {
			fmt.Fprintf(&sb, "  %+3d %s\n", a.Points, a.Reason)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Issues:   %d critical, %d major, %d minor\n",
		len(res.FlaggedIssues.Critical), len(res.FlaggedIssues.Major), len(res.FlaggedIssues.Minor))
	critical := make([]string, 0, len(res.FlaggedIssues.Critical))
	for _, issue := range res.FlaggedIssues.Critical {
		critical = append(critical, fmt.Sprintf("[%s] %s", issue.Category, issue.Issue))
	}
	writeList(&sb, "Critical", critical)
	writeList(&sb, "Strengths", res.Strengths)
	writeList(&sb, "Improvements", res.Improvements)

	p.printBox("ATS SCORE", sb.String())
	p.PrintJobMatch(res.JobMatch)
}

// PrintGrammarReport outputs error counts and the first few findings.
func (p *Printer) PrintGrammarReport(g *types.GrammarCheckResult) {
	if g == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Errors:   %d (spelling %d, grammar %d, terminology %d)\n",
		g.TotalErrors, g.Summary.SpellingCount, g.Summary.GrammarCount, g.Summary.ProfessionalCount)
	fmt.Fprintf(&sb, "Severity: %d high, %d medium, %d low\n\n",
		g.Summary.SeverityBreakdown.High, g.Summary.SeverityBreakdown.Medium, g.Summary.SeverityBreakdown.Low)

	spelling := make([]string, 0, len(g.SpellingErrors))
	for _, e := range g.SpellingErrors {
		spelling = append(spelling, fmt.Sprintf("%s → %s (%s)", e.Word, e.Correction, e.Source))
	}
	writeList(&sb, "Spelling", spelling)

	grammar := make([]string, 0, len(g.GrammarErrors))
	for _, e := range g.GrammarErrors {
		grammar = append(grammar, fmt.Sprintf("%q: %s (%s)", e.Text, e.Issue, e.Source))
	}
	writeList(&sb, "Grammar", grammar)

	terms := make([]string, 0, len(g.ProfessionalErrors))
	for _, e := range g.ProfessionalErrors {
		terms = append(terms, fmt.Sprintf("%s → %s (%s)", e.Term, e.Correction, e.Source))
	}
	writeList(&sb, "Terminology", terms)

	p.printBox("GRAMMAR CHECK", sb.String())
}

// PrintJobMatch outputs a job-description match summary.
func (p *Printer) PrintJobMatch(m *types.JobMatchResult) {
	if m == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Match:    %.1f%% (%s)\n", m.MatchPercentage, m.MatchRating)
	fmt.Fprintf(&sb, "Keywords: %d in job description\n\n", m.JobKeywordsCount)
	writeList(&sb, "Matched", m.MatchedKeywords)
	writeList(&sb, "Missing", m.MissingKeywords)
	sb.WriteString(m.Recommendation)

	p.printBox("JOB MATCH", sb.String())
}

// RankedEntry is one scored file in a batch summary.
type RankedEntry struct {
	Source string
	Result types.ATSResult
	Err    error
}

// PrintRanking outputs batch results in the given order, one line per file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRanking(entries []RankedEntry) {
	fmt.Fprintf(p.out, "%-4s %-32s %5s  %s\n", "#", "FILE", "SCORE", "RATING")
	for i, e := range entries {
		name := e.Source
		if runes := []rune(name); len(runes) > 32 {
			name = "..." + string(runes[len(runes)-29:])
		}
		if e.Err != nil {
			fmt.Fprintf(p.out, "%-4d %-32s %5s  error: %v\n", i+1, name, "-", e.Err)
			continue
		}
		fmt.Fprintf(p.out, "%-4d %-32s %5d  %s\n", i+1, name, e.Result.TotalScore, e.Result.Rating)
	}
}
