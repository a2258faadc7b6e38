package ats

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

func evaluateSpelling(in *input) Evaluation {
	ev := Evaluation{Category: types.CategorySpellingGrammar, Score: 5}
	g := in.grammar

	switch total := g.TotalErrors; {
	case total == 0:
		ev.tip("No spelling or grammar errors detected")
	case total <= 2:
		ev.Score--
		ev.tip("Minor spelling/grammar issues found")
		ev.issue(types.IssueFormattingErrors, issueCategorySpelling, fmt.Sprintf("%d minor spelling/grammar issues", total), types.SeverityMinor,
			"Minor spelling or grammar errors can impact professional impression",
			"Review and correct the identified spelling and grammar issues")
	case total <= 5:
		ev.Score -= 3
		ev.tip("Several spelling/grammar issues found")
		ev.issue(types.IssueFormattingErrors, issueCategorySpelling, fmt.Sprintf("%d spelling/grammar issues", total), types.SeverityMajor,
			"Multiple spelling and grammar errors can significantly impact ATS compatibility",
			"Carefully proofread and correct all spelling and grammar errors")
	default:
		ev.Score -= 5
		ev.tip("Many spelling/grammar issues found")
		ev.issue(types.IssueFormattingErrors, issueCategorySpelling, fmt.Sprintf("%d spelling/grammar issues", total), types.SeverityCritical,
			"Numerous spelling and grammar errors severely impact resume quality and ATS compatibility",
			"Use spell-check tools and proofread thoroughly to fix all errors")
	}

	if n := len(g.SpellingErrors); n > 0 {
		details := make([]string, 0, 6)
		for _, e := range g.SpellingErrors[:min(n, 5)] {
			details = append(details, fmt.Sprintf("'%s' should be '%s'", e.Word, e.Correction))
		}
		ev.issue(types.IssueFormattingErrors, issueCategorySpelling, "Spelling errors detected", severityAbove(n, 3),
			fmt.Sprintf("Found %d spelling errors: %s", n, joinDetails(details, n, 5)),
			"Use spell-check and proofread carefully to correct all spelling errors")
	}

	if n := len(g.GrammarErrors); n > 0 {
		details := make([]string, 0, 4)
		for _, e := range g.GrammarErrors[:min(n, 3)] {
			details = append(details, fmt.Sprintf("'%s' (%s)", e.Text, e.Issue))
		}
		ev.issue(types.IssueFormattingErrors, issueCategorySpelling, "Grammar issues detected", severityAbove(n, 2),
			fmt.Sprintf("Found %d grammar issues: %s", n, joinDetails(details, n, 3)),
			"Review grammar rules and proofread to correct all grammar issues")
	}

	if n := len(g.ProfessionalErrors); n > 0 {
		details := make([]string, 0, 4)
		for _, e := range g.ProfessionalErrors[:min(n, 3)] {
			details = append(details, fmt.Sprintf("'%s' should be '%s'", e.Term, e.Correction))
		}
		ev.issue(types.IssueFormattingErrors, issueCategorySpelling, "Professional terminology issues detected", types.SeverityMinor,
			fmt.Sprintf("Found %d professional terminology issues: %s", n, joinDetails(details, n, 3)),
			"Use proper professional terminology and formatting")
	}
	return ev
}

// severityAbove is major when n exceeds limit, minor otherwise.
func severityAbove(n, limit int) types.Severity {
	if n > limit {
		return types.SeverityMajor
	}
	return types.SeverityMinor
}

func joinDetails(details []string, total, shown int) string {
	if total > shown {
		details = append(details, fmt.Sprintf("... and %d more", total-shown))
	}
	return strings.Join(details, ", ")
}
