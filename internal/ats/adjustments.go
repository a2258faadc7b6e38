package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// Adjustment names reported in ATSResult.ScoreAdjustments.
const (
	AdjustmentThinContent    = "thin_content"
	AdjustmentVerboseContent = "verbose_content"
	AdjustmentEmptySections  = "empty_sections"
	AdjustmentStuffing       = "keyword_stuffing"
	AdjustmentSkillInflation = "skill_inflation"
	AdjustmentDegreeProjects = "degree_projects_boost"
)

const (
	veryThinWords = 80
	thinWords     = 150
	verboseWords  = 1000

	emptySectionPenalty = 3

	stuffingMinTokens = 50
	stuffingRatio     = 2.5

	inflationMinSkills = 8
	// inflationShare is the recognized share at or below which declared skills count as inflated.
	inflationShare = 0.25

	stuffingTip = "Consider reducing keyword repetition for better readability"
)

var contentWord = regexp.MustCompile(`[A-Za-z0-9#+.]+`)

// adjust computes the global penalties and boosts for r. The returned tips
// are appended after the evaluator tips.
func adjust(in *input) ([]types.ScoreAdjustment, []string) {
	r := in.resume
	var adj []types.ScoreAdjustment
	var tips []string

	text := strings.TrimSpace(strings.Join(r.TextFields(), " "))

	switch words := len(contentWord.FindAllString(text, -1)); {
	case words < veryThinWords:
		adj = append(adj, types.ScoreAdjustment{Name: AdjustmentThinContent, Points: -10, Reason: "Fewer than 80 words of content"})
	case words < thinWords:
		adj = append(adj, types.ScoreAdjustment{Name: AdjustmentThinContent, Points: -5, Reason: "Fewer than 150 words of content"})
	case words > verboseWords:
		adj = append(adj, types.ScoreAdjustment{Name: AdjustmentVerboseContent, Points: -3, Reason: "More than 1000 words of content"})
	}

	var empty []string
	for _, s := range []struct {
		name  string
		items []string
	}{
		{"skills", r.Skills},
		{"projects", r.Projects},
		{"internships", r.Internships},
		{"achievements", r.Achievements},
	} {
		if len(s.items) == 0 {
			empty = append(empty, s.name)
		}
	}
	if len(empty) > 0 {
		adj = append(adj, types.ScoreAdjustment{
			Name:   AdjustmentEmptySections,
			Points: -emptySectionPenalty * len(empty),
			Reason: "Empty sections: " + strings.Join(empty, ", "),
		})
	}

	tokens := skills.Words(text)
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}
	repeated := len(tokens) - len(unique)
	if len(tokens) >= stuffingMinTokens && float64(repeated)/float64(max(len(unique), 1)) > stuffingRatio {
		adj = append(adj, types.ScoreAdjustment{Name: AdjustmentStuffing, Points: -5, Reason: "Heavy token repetition suggests keyword stuffing"})
		tips = append(tips, stuffingTip)
	}

	if declared := len(r.Skills); declared >= inflationMinSkills {
		if recognized := in.allowed.CountRecognized(r.Skills); float64(recognized) <= inflationShare*float64(declared) {
			adj = append(adj, types.ScoreAdjustment{Name: AdjustmentSkillInflation, Points: -7, Reason: "Most declared skills are not recognized"})
		}
	}

	if r.Degree != "" && len(r.Projects) > 0 {
		adj = append(adj, types.ScoreAdjustment{Name: AdjustmentDegreeProjects, Points: 3, Reason: "Degree backed by projects"})
	}
	return adj, tips
}
