package ats

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// impactPattern detects quantified outcomes: percentages, multipliers,
// time or scale units, "<verb> ... by N" and ranges.
var impactPattern = regexp.MustCompile(`(?i)\d+%|\d+x|` +
	`\d+\s*(?:ms|seconds?|minutes?|hours?|days?|weeks?|months?|users?|requests?|records?|rows?|GB|MB|TB)|` +
	`(?:reduced|increased|improved|optimized|decreased|enhanced|accelerated|minimized|maximized)\s+.*?\s+by\s+\d+|` +
	`(?:from|to)\s+\d+`)

var projectActionVerbs = setOf(
	"developed", "designed", "implemented", "architected", "built", "created",
	"led", "managed", "coordinated", "spearheaded", "directed", "supervised",
	"analyzed", "evaluated", "assessed", "investigated", "researched",
	"optimized", "improved", "enhanced", "streamlined", "automated",
	"integrated", "deployed", "configured", "maintained", "migrated",
	"collaborated", "facilitated", "executed", "delivered", "achieved",
	"reduced", "increased", "accelerated", "minimized", "maximized",
)

// minProjectWords is the word count a project description must exceed to count as detailed.
const minProjectWords = 10

// projectStats summarizes the per-project signals used by the projects evaluator.
type projectStats struct {
	withSkills  int
	skillHits   int
	withVerbs   int
	withMetrics int
	brief       int
}

func collectProjectStats(projects []string, recognized []string) projectStats {
	own := recognizedSet(recognized)
	var st projectStats
	for _, p := range projects {
		if hits := projectSkillHits(p, own); hits > 0 {
			st.withSkills++
			st.skillHits += hits
		}
		if hasActionVerb(p) {
			st.withVerbs++
		}
		if impactPattern.MatchString(p) {
			st.withMetrics++
		}
		if len(strings.Fields(p)) <= minProjectWords {
			st.brief++
		}
	}
	return st
}

func hasActionVerb(text string) bool {
	for _, w := range skills.Words(text) {
		if projectActionVerbs[strings.TrimRight(w, ".")] {
			return true
		}
	}
	return false
}

func evaluateProjects(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryProjects}
	projects := in.resume.Projects
	if len(projects) == 0 {
		ev.tip("Add a projects section to showcase your work")
		ev.issue(types.IssueMissingSection, issueCategoryProjects, "Missing projects section", types.SeverityCritical,
			"Projects demonstrate practical skills and problem-solving abilities, essential for ATS scoring",
			"Add a projects section with 2-3 relevant projects showing your technical skills and measurable impact")
		return ev
	}

	switch n := len(projects); {
	case n >= 3:
		ev.Score += 6
		ev.tip("Excellent project portfolio with 3+ projects")
	case n == 2:
		ev.Score += 4
		ev.tip("Good project experience with 2 projects")
	default:
		ev.Score += 2
		ev.tip("Add 1-2 more projects to strengthen portfolio")
		ev.issue(types.IssueMissingContent, issueCategoryProjects, "Limited project portfolio", types.SeverityMinor,
			"Having 3+ projects demonstrates diverse skills and sustained technical engagement",
			"Add 1-2 more relevant projects with detailed descriptions and measurable outcomes")
	}

	st := collectProjectStats(projects, in.recognized)
	total := float64(len(projects))

	skillRatio := float64(st.withSkills) / total
	avgHits := float64(st.skillHits) / total
	switch {
	case skillRatio >= 0.8 && avgHits >= 2:
		ev.Score += 5
		ev.tip("Excellent keyword alignment - projects strongly demonstrate your listed skills")
	case skillRatio >= 0.6 && avgHits >= 1.5:
		ev.Score += 4
		ev.tip("Good keyword matching - projects align well with your skills")
	case skillRatio >= 0.4 && avgHits >= 1:
		ev.Score += 3
		ev.tip("Moderate alignment - strengthen keyword usage in project descriptions")
	case st.withSkills > 0:
		ev.Score++
		ev.tip("Weak keyword alignment - projects don't clearly reflect your skills")
		ev.issue(types.IssueMismatch, issueCategoryProjects, "Poor skill-project alignment", types.SeverityMajor,
			"ATS matches project keywords with your listed skills. Projects should explicitly mention the technologies you claim",
			`Revise project descriptions to include exact skill keywords (e.g., "Python", "React", "AWS") and technical methodologies`)
	default:
		ev.tip("No keyword alignment - projects must use your listed technical skills")
		ev.issue(types.IssueMismatch, issueCategoryProjects, "No skill-project alignment", types.SeverityCritical,
			"Projects fail to demonstrate any listed skills. ATS cannot validate your technical expertise",
			`Rewrite project descriptions using exact skill names from your skills section. Example: "Developed REST API using Python and Django"`)
	}

	switch metricRatio := float64(st.withMetrics) / total; {
	case metricRatio >= 0.67:
		ev.Score += 3
		ev.tip("Excellent quantifiable impact - projects show measurable results with metrics")
	case metricRatio >= 0.5:
		ev.Score += 2
		ev.tip("Good impact demonstration - some projects show quantifiable results")
	case metricRatio > 0:
		ev.Score++
		ev.tip("Add more quantifiable metrics to demonstrate project impact")
		ev.issue(types.IssueMissingContent, issueCategoryProjects, "Limited quantifiable impact", types.SeverityMinor,
			"Recruiters and ATS look for measurable achievements. Use numbers, percentages, and scale metrics",
			`Add metrics like "reduced load time by 35%", "handled 10K+ daily users", or "improved efficiency by 2x"`)
	default:
		ev.tip("No quantifiable metrics - add numbers to demonstrate project value")
		ev.issue(types.IssueMissingContent, issueCategoryProjects, "No quantifiable impact", types.SeverityMajor,
			"Without metrics, ATS cannot assess the value of your contributions. Numbers validate achievement",
			"Add specific metrics: percentages (35% faster), scale (5000 users), time savings (reduced by 2 hours), or volume (processed 1M records)")
	}

	switch verbRatio := float64(st.withVerbs) / total; {
	case verbRatio >= 0.8:
		ev.Score++
		ev.tip("Strong use of action verbs - projects demonstrate active contributions")
	case verbRatio >= 0.5:
		ev.tip("Good verb usage - consider using more action verbs (Developed, Architected, Optimized)")
	default:
		ev.tip("Use strong action verbs to start project descriptions (Implemented, Designed, Led, Analyzed)")
		ev.issue(types.IssueFormattingErrors, issueCategoryProjects, "Weak action verbs", types.SeverityMinor,
			"ATS recognizes professional jargon. Start descriptions with strong action verbs to validate experience",
			"Begin each project with verbs like: Developed, Architected, Implemented, Optimized, Led, Managed, Analyzed, Designed")
	}

	if st.brief > 0 {
		ev.tip("Expand project descriptions - include technologies, your role, methodology, and measurable outcomes")
		ev.issue(types.IssueFormattingErrors, issueCategoryProjects, "Insufficient project descriptions", types.SeverityMinor,
			"Detailed descriptions (10+ words) help ATS extract relevant keywords and context",
			"For each project, include: (1) technologies used, (2) action verbs, (3) your specific role, (4) quantifiable results")
	}
	return ev
}
