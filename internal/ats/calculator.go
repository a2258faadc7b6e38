package ats

import (
	"fmt"

	"github.com/jonathan/resume-ats/internal/corrections"
	"github.com/jonathan/resume-ats/internal/grammar"
	"github.com/jonathan/resume-ats/internal/jobmatch"
	"github.com/jonathan/resume-ats/internal/parsing"
	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// Rating thresholds on the final total.
const (
	excellentFloor = 88
	goodFloor      = 72
	fairFloor      = 55

	strengthFloor    = 10
	improvementBelow = 5
)

// Calculator scores résumés against one allowlist. It holds only read-only
// reference data and is safe for concurrent use.
type Calculator struct {
	allowed   *skills.AllowedSet
	generator *corrections.Generator
	matcher   *jobmatch.Matcher
}

// NewCalculator returns a Calculator over the process-wide allowlist.
// It fails only if the embedded skill catalog cannot be loaded.
func NewCalculator() (*Calculator, error) {
	allowed, err := skills.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to build skill allowlist: %w", err)
	}
	return NewCalculatorWith(allowed), nil
}

// NewCalculatorWith returns a Calculator over allowed.
func NewCalculatorWith(allowed *skills.AllowedSet) *Calculator {
	return &Calculator{
		allowed:   allowed,
		generator: corrections.NewGenerator(allowed),
		matcher:   jobmatch.NewMatcher(allowed),
	}
}

// Allowed returns the allowlist the calculator scores against.
func (c *Calculator) Allowed() *skills.AllowedSet {
	return c.allowed
}

// Matcher returns the job-description matcher sharing the calculator's allowlist.
func (c *Calculator) Matcher() *jobmatch.Matcher {
	return c.matcher
}

// Calculate normalizes a raw résumé document and scores it. Any input,
// including an empty map, yields a result; content problems are reported as
// flagged issues.
func (c *Calculator) Calculate(raw map[string]any) types.ATSResult {
	return c.CalculateRecord(parsing.NormalizeResume(raw))
}

// CalculateRecord scores an already-normalized résumé.
func (c *Calculator) CalculateRecord(r types.ResumeRecord) types.ATSResult {
	in := &input{
		resume:     r,
		allowed:    c.allowed,
		recognized: c.allowed.Recognize(r.Skills),
		grammar:    grammar.CheckResume(r),
	}

	result := types.ATSResult{
		Tips:          []string{},
		FlaggedIssues: types.NewFlaggedIssues(),
	}
	for _, eval := range evaluators {
		ev := eval(in)
		result.ScoreBreakdown.Set(ev.Category, ev.Score)
		result.Tips = append(result.Tips, ev.Tips...)
		result.FlaggedIssues.Add(ev.Issues...)
	}

	adjustments, tips := adjust(in)
	result.ScoreAdjustments = append([]types.ScoreAdjustment{}, adjustments...)
	result.Tips = append(result.Tips, tips...)

	result.TotalScore = max(0, min(100, result.ScoreBreakdown.Sum()+result.AdjustmentTotal()))
	result.Rating, result.RatingColor = Rate(result.TotalScore)
	result.Strengths, result.Improvements = strengthsAndImprovements(result.ScoreBreakdown)
	result.Corrections = c.generator.Generate(r, result.ScoreBreakdown)
	result.GrammarDetails = in.grammar
	result.JobMatch = c.matcher.Analyze(r)
	return result
}

// Rate maps a total score to its rating band and display color.
func Rate(total int) (rating, color string) {
	switch {
	case total >= excellentFloor:
		return types.RatingExcellent, "green"
	case total >= goodFloor:
		return types.RatingGood, "blue"
	case total >= fairFloor:
		return types.RatingFair, "yellow"
	}
	return types.RatingNeedsImprovement, "red"
}

func strengthsAndImprovements(b types.ScoreBreakdown) (strengths, improvements []string) {
	strengths, improvements = []string{}, []string{}
	for _, c := range types.Categories {
		switch score := b.Get(c); {
		case score >= strengthFloor:
			strengths = append(strengths, fmt.Sprintf("Strong %s section", c.Label()))
		case score < improvementBelow:
			improvements = append(improvements, fmt.Sprintf("Improve %s section", c.Label()))
		}
	}
	return strengths, improvements
}
