// Package ats scores a normalized résumé across nine fixed categories,
// applies global penalties and boosts, and assembles the full ATSResult.
package ats

import (
	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// Display categories used on issues.
const (
	issueCategoryContact      = "Contact Information"
	issueCategoryEducation    = "Education"
	issueCategoryExperience   = "Experience"
	issueCategorySkills       = "Skills"
	issueCategoryKeywords     = "Keywords"
	issueCategoryProjects     = "Projects"
	issueCategoryAchievements = "Achievements"
	issueCategoryFormat       = "Format & Structure"
	issueCategorySpelling     = "Spelling & Grammar"
)

// Evaluation is what one category evaluator returns. Score is raw: the
// aggregator clamps it to the category maximum.
type Evaluation struct {
	Category types.Category
	Score    int
	Tips     []string
	Issues   []types.Issue
}

func (e *Evaluation) tip(t string) {
	e.Tips = append(e.Tips, t)
}

func (e *Evaluation) issue(kind, category, issue string, severity types.Severity, description, fix string) {
	e.Issues = append(e.Issues, types.Issue{
		Type:        kind,
		Category:    category,
		Issue:       issue,
		Severity:    severity,
		Description: description,
		Fix:         fix,
	})
}

// input is the per-call state shared by the evaluators. It is built once per
// scoring call and never modified afterwards.
type input struct {
	resume  types.ResumeRecord
	allowed *skills.AllowedSet
	// recognized is the distinct allowlist entries matched from the declared skills.
	recognized []string
	grammar    types.GrammarCheckResult
}

type evaluator func(in *input) Evaluation

// evaluators run in report order: their tips and issues are concatenated in this order.
var evaluators = []evaluator{
	evaluateContact,
	evaluateEducation,
	evaluateExperience,
	evaluateSkills,
	evaluateKeywords,
	evaluateProjects,
	evaluateAchievements,
	evaluateFormat,
	evaluateSpelling,
}
