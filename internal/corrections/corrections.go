// Package corrections infers a candidate's technical domains and derives
// keyword recommendations, structure tips and skill-project gap analysis
// from a scored résumé.
package corrections

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

const (
	maxRecommendedKeywords = 12
	maxActionVerbs         = 10
	maxSuggestions         = 8
	optimalSkillCount      = 8
)

var (
	structureMetric = regexp.MustCompile(`\b(?:\d+%|\d+ (?:ms|s|min|hrs|hours|days)\b|\d+\s*(?:users|requests|records|MB|GB)\b)`)
	impactMetric    = regexp.MustCompile(`\d+%|\d+x|\d+\s*(?:users|ms|GB)`)
	strongOpener    = regexp.MustCompile(`\b(developed|designed|implemented|built|created|led|optimized|architected)\b`)
)

// Generator builds a CorrectionsBundle against one allowlist.
type Generator struct {
	allowed *skills.AllowedSet
}

// NewGenerator returns a Generator over allowed.
func NewGenerator(allowed *skills.AllowedSet) *Generator {
	return &Generator{allowed: allowed}
}

// Generate derives recommendations for r given its clamped category scores.
func (g *Generator) Generate(r types.ResumeRecord, breakdown types.ScoreBreakdown) types.CorrectionsBundle {
	recognized := g.allowed.Recognize(r.Skills)
	have := newKeywordSet(recognized...)

	context := strings.Join(r.Projects, " ") + " " + strings.Join(r.Internships, " ")
	scores := InferDomains(recognized, context)
	active := activeDomains(scores)

	bundle := types.CorrectionsBundle{
		ActionVerbs:     append([]string(nil), actionVerbs[:maxActionVerbs]...),
		StructureTips:   structureTips(r.Projects),
		DetectedDomains: []string{},
	}
	if active != nil {
		bundle.DetectedDomains = active
	}
	if len(scores) > 0 {
		bundle.PrimaryDomain = scores[0].Domain
	}

	bundle.RecommendedKeywords = g.recommendKeywords(bundle.PrimaryDomain, active, have)
	bundle.SampleBulletRewrites = sampleRewrites(r.Projects, recognized)
	bundle.SkillProjectGaps, bundle.ActionableSuggestions = skillProjectGaps(r.Projects, recognized)

	bundle.ActionableSuggestions = append(bundle.ActionableSuggestions,
		categorySuggestions(r, breakdown, recognized, bundle.RecommendedKeywords)...)
	sort.SliceStable(bundle.ActionableSuggestions, func(i, j int) bool {
		return priorityRank(bundle.ActionableSuggestions[i].Priority) < priorityRank(bundle.ActionableSuggestions[j].Priority)
	})
	if len(bundle.ActionableSuggestions) > maxSuggestions {
		bundle.ActionableSuggestions = bundle.ActionableSuggestions[:maxSuggestions]
	}
	return bundle
}

// recommendKeywords collects keywords the candidate lacks: the primary
// domain's high-value and adjacent terms first, then the top three high-value
// terms of the next three active domains, then bucket terms.
func (g *Generator) recommendKeywords(primary string, active []string, have keywordSet) []string {
	var recs []string
	seen := map[string]bool{}
	add := func(kw string) {
		if kw != "" && !seen[kw] {
			seen[kw] = true
			recs = append(recs, kw)
		}
	}
	missing := func(kw string) bool {
		return g.allowed.Contains(kw) && !have.has(kw)
	}

	if primary != "" {
		for _, kw := range highValueKeywords[primary] {
			if n := skills.NormalizeSkillText(kw); missing(n) {
				add(n)
			}
		}
		for _, kw := range adjacentKeywords[primary] {
			if n := skills.NormalizeSkillText(kw); !have.has(n) {
				add(n)
			}
		}
	}

	if len(active) > 1 {
		for _, d := range active[1:min(len(active), 4)] {
			hv := highValueKeywords[d]
			for _, kw := range hv[:min(len(hv), 3)] {
				if n := skills.NormalizeSkillText(kw); missing(n) {
					add(n)
				}
			}
		}
	}

	for _, b := range buckets {
		if !overlaps(b.keywords, have) {
			continue
		}
		for _, kw := range highValueKeywords[b.name] {
			if n := skills.NormalizeSkillText(kw); missing(n) {
				add(n)
			}
		}
		for _, kw := range adjacentKeywords[b.name] {
			if n := skills.NormalizeSkillText(kw); missing(n) {
				add(n)
			}
		}
	}

	if len(recs) == 0 {
		for _, kw := range neutralKeywords {
			if missing(kw) {
				add(kw)
			}
		}
	}

	if len(recs) > maxRecommendedKeywords {
		recs = recs[:maxRecommendedKeywords]
	}
	if recs == nil {
		return []string{}
	}
	return recs
}

func overlaps(a, b keywordSet) bool {
	for k := range b {
		if a.has(k) {
			return true
		}
	}
	return false
}

func structureTips(projects []string) []string {
	tips := []string{
		"Use bullet format: Action verb + what you built + technologies + measurable outcome (%, time, cost).",
	}
	if len(projects) == 0 {
		return tips
	}
	for _, p := range projects {
		if structureMetric.MatchString(p) {
			return tips
		}
	}
	return append(tips, "Add metrics to project bullets (e.g., reduced latency by 30%, handled 50k users).")
}

func sampleRewrites(projects, recognized []string) []string {
	if len(projects) == 0 {
		return []string{}
	}
	first := projects[0]
	tech := "React"
	if len(recognized) > 0 {
		tech = recognized[0]
	}
	kind := "system"
	if strings.Contains(strings.ToLower(first), "web") {
		kind = "web app"
	}
	return []string{fmt.Sprintf(
		"Before: %s\nAfter: Developed a %s using %s, improving performance by 25%% and reducing errors by 15%%.",
		first, kind, tech,
	)}
}

// skillProjectGaps finds recognized skills that no project mentions, grouped
// by bucket in order of first appearance.
func skillProjectGaps(projects, recognized []string) ([]types.SkillProjectGap, []types.ActionableSuggestion) {
	gaps := []types.SkillProjectGap{}
	suggestions := []types.ActionableSuggestion{}
	if len(recognized) == 0 || len(projects) == 0 {
		return gaps, suggestions
	}

	demonstrated := map[string]bool{}
	for _, p := range projects {
		for _, s := range skills.Mentions(p, recognized) {
			demonstrated[s] = true
		}
	}

	var order []string
	grouped := map[string][]string{}
	for _, s := range recognized {
		if demonstrated[s] {
			continue
		}
		b := bucketOf(s)
		if b == "" {
			continue
		}
		if _, ok := grouped[b]; !ok {
			order = append(order, b)
		}
		grouped[b] = append(grouped[b], s)
	}

	for _, b := range order {
		list := grouped[b]
		if len(list) == 1 {
			gaps = append(gaps, types.SkillProjectGap{
				Type:     "missing_demonstration",
				Skills:   list,
				Domain:   b,
				Severity: types.PriorityMedium,
				Message:  fmt.Sprintf("Skill '%s' is listed but not demonstrated in projects", list[0]),
			})
			continue
		}
		gaps = append(gaps, types.SkillProjectGap{
			Type:     "missing_demonstration",
			Skills:   list[:min(len(list), 5)],
			Domain:   b,
			Severity: types.PriorityHigh,
			Message:  fmt.Sprintf("You listed %s in your skills but no projects demonstrate them", strings.Join(list[:min(len(list), 3)], ", ")),
		})
		suggestions = append(suggestions, types.ActionableSuggestion{
			Category:   "Add Missing Project",
			Priority:   types.PriorityHigh,
			Suggestion: fmt.Sprintf("Create a project using %s to validate your expertise", strings.Join(list[:min(len(list), 3)], ", ")),
			Example:    fmt.Sprintf("Example: %s using %s", projectExamples[b][0], strings.Join(list[:2], ", ")),
			Impact:     "Adding this project could increase your ATS score by 3-5 points",
		})
	}
	return gaps, suggestions
}

func categorySuggestions(r types.ResumeRecord, breakdown types.ScoreBreakdown, recognized, recommended []string) []types.ActionableSuggestion {
	var out []types.ActionableSuggestion

	if breakdown.Projects < 10 {
		hasMetric := false
		for _, p := range r.Projects {
			if impactMetric.MatchString(p) {
				hasMetric = true
				break
			}
		}
		if !hasMetric {
			out = append(out, types.ActionableSuggestion{
				Category:   "Add Quantifiable Metrics",
				Priority:   types.PriorityHigh,
				Suggestion: "Include specific numbers to demonstrate project impact",
				Example:    `Instead of "improved performance", write "reduced load time by 35%" or "handled 10K+ concurrent users"`,
				Impact:     "Adding metrics could increase your projects score by 2-3 points",
			})
		}

		weak := 0
		for _, p := range r.Projects {
			if !strongOpener.MatchString(strings.ToLower(p)) {
				weak++
			}
		}
		if 2*weak > len(r.Projects) {
			out = append(out, types.ActionableSuggestion{
				Category:   "Use Action Verbs",
				Priority:   types.PriorityMedium,
				Suggestion: "Start each project description with a strong action verb",
				Example:    "Begin with: Developed, Architected, Implemented, Optimized, Led, Designed, Built, Engineered",
				Impact:     "Using professional action verbs adds credibility and can improve score by 1 point",
			})
		}

		if len(recognized) > 0 {
			top := recognized[:min(len(recognized), 10)]
			withSkills := 0
			for _, p := range r.Projects {
				if len(skills.Mentions(p, top)) > 0 {
					withSkills++
				}
			}
			if 2*withSkills < len(r.Projects) {
				out = append(out, types.ActionableSuggestion{
					Category:   "Improve Keyword Alignment",
					Priority:   types.PriorityHigh,
					Suggestion: "Explicitly mention your technical skills in project descriptions",
					Example:    "Include keywords like: " + strings.Join(recognized[:min(len(recognized), 5)], ", "),
					Impact:     "Better keyword alignment could boost your score by 3-4 points",
				})
			}
		}
	}

	if breakdown.Skills < 20 && len(recognized) < optimalSkillCount {
		out = append(out, types.ActionableSuggestion{
			Category:   "Expand Skills Section",
			Priority:   types.PriorityMedium,
			Suggestion: fmt.Sprintf("Add %d more relevant technical skills to reach optimal range", optimalSkillCount-len(recognized)),
			Example:    "Consider adding: " + strings.Join(recommended[:min(len(recommended), 5)], ", "),
			Impact:     "A well-rounded skills section (8-15 skills) maximizes this category score",
		})
	}

	if breakdown.Experience < 15 && len(r.Experience) < 2 {
		out = append(out, types.ActionableSuggestion{
			Category:   "Add Experience",
			Priority:   types.PriorityHigh,
			Suggestion: "Include internships, part-time work, or relevant volunteer experience",
			Example:    "Add: Internship roles, freelance projects, teaching assistant positions, or open-source contributions",
			Impact:     "Additional experience entries significantly boost ATS credibility",
		})
	}

	if breakdown.Format < 4 {
		out = append(out, types.ActionableSuggestion{
			Category:   "Improve Resume Structure",
			Priority:   types.PriorityMedium,
			Suggestion: "Ensure all standard sections are present and well-organized",
			Example:    "Include: Contact Info, Education, Skills, Experience, Projects, Achievements (in this order)",
			Impact:     "Proper structure helps ATS parse your resume correctly",
		})
	}

	if len(r.Achievements) == 0 {
		out = append(out, types.ActionableSuggestion{
			Category:   "Add Achievements",
			Priority:   types.PriorityLow,
			Suggestion: "Include certifications, awards, hackathon wins, or academic honors",
			Example:    `Examples: "AWS Certified Developer", "Won 1st place in University Hackathon", "Dean's List 2023"`,
			Impact:     "Achievements section adds 5 bonus points and differentiates your profile",
		})
	}
	return out
}

func priorityRank(p string) int {
	switch p {
	case types.PriorityHigh:
		return 0
	case types.PriorityMedium:
		return 1
	}
	return 2
}
