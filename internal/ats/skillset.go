package ats

import (
	"strings"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

// skillClusters drive the diversity bonus. Entries are normalized.
var skillClusters = []struct {
	name    string
	members map[string]bool
}{
	{"programming", setOf("python", "java", "javascript", "typescript", "c", "c++", "c#", "go", "rust", "kotlin", "swift", "php", "ruby")},
	{"data_ml", setOf("pandas", "numpy", "sklearn", "tensorflow", "pytorch", "nlp", "opencv")},
	{"web", setOf("react", "angular", "vue", "node", "express", "django", "flask", "graphql", "rest", "api", "html", "css", "sass", "tailwind", "bootstrap")},
	{"devops_cloud", setOf("docker", "kubernetes", "aws", "azure", "gcp", "linux", "git")},
	{"db", setOf("sql", "mysql", "postgres", "mongodb", "redis")},
}

// softSkills are matched as substrings of each lowercased declared skill.
var softSkills = []string{
	"leadership", "teamwork", "communication", "problem solving",
	"critical thinking", "time management", "project management",
	"collaboration", "adaptability", "creativity", "analytical",
	"detail oriented", "self motivated", "initiative", "mentoring",
}

func setOf(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func evaluateSkills(in *input) Evaluation {
	ev := Evaluation{Category: types.CategorySkills}
	declared := in.resume.Skills
	if len(declared) == 0 {
		ev.tip("Add a dedicated skills section")
		ev.issue(types.IssueMissingSection, issueCategorySkills, "Missing skills section", types.SeverityCritical,
			"Skills section is essential for ATS systems to match your qualifications",
			"Add a dedicated skills section with relevant technical and soft skills")
		return ev
	}

	n := len(in.recognized)
	switch {
	case n >= 12:
		ev.Score += 15
		ev.tip("Excellent variety of recognized technical skills")
	case n >= 8:
		ev.Score += 13
		ev.tip("Strong set of recognized technical skills")
	case n >= 5:
		ev.Score += 10
		ev.tip("Good recognized technical skills")
	case n >= 3:
		ev.Score += 7
		ev.tip("Add more relevant, industry-recognized skills")
	case n > 0:
		ev.Score += 4
		ev.tip("Add more relevant, industry-recognized skills")
		ev.issue(types.IssueWeakKeywords, issueCategorySkills, "Limited technical skills", types.SeverityMinor,
			"More recognized technical skills help match job requirements better",
			"Add more role-relevant and verified skills (e.g., React, SQL, Python)")
	default:
		ev.tip("Include relevant technical skills for your field")
		ev.issue(types.IssueWeakKeywords, issueCategorySkills, "No technical skills found", types.SeverityMajor,
			"Technical skills are crucial for most technical roles",
			"Add relevant technical skills like programming languages, tools, frameworks")
	}

	switch clusters := clustersHit(in.recognized); {
	case clusters >= 5:
		ev.Score += 5
		ev.tip("Exceptional breadth across all skill categories")
	case clusters == 4:
		ev.Score += 4
		ev.tip("Strong breadth across multiple skill categories")
	case clusters == 3:
		ev.Score += 3
		ev.tip("Good breadth across several skill categories")
	case clusters == 2:
		ev.Score += 2
	}

	switch soft := countSoftSkills(declared); {
	case soft >= 3:
		ev.Score += 5
		ev.tip("Excellent balance of technical and soft skills")
	case soft == 2:
		ev.Score += 4
		ev.tip("Good balance of technical and soft skills")
	case soft == 1:
		ev.Score += 2
		ev.tip("Consider adding more soft skills")
		ev.issue(types.IssueWeakKeywords, issueCategorySkills, "Limited soft skills", types.SeverityMinor,
			"Soft skills are important for team collaboration and leadership roles",
			"Add soft skills like leadership, communication, teamwork, problem-solving")
	default:
		ev.tip("Include soft skills like leadership, communication, teamwork")
		ev.issue(types.IssueWeakKeywords, issueCategorySkills, "No soft skills found", types.SeverityMinor,
			"Soft skills demonstrate your interpersonal abilities",
			"Include soft skills like leadership, communication, teamwork, adaptability")
	}
	return ev
}

func clustersHit(recognized []string) int {
	hit := 0
	for _, c := range skillClusters {
		for _, s := range recognized {
			if c.members[s] {
				hit++
				break
			}
		}
	}
	return hit
}

func countSoftSkills(declared []string) int {
	n := 0
	for _, s := range declared {
		lower := strings.ToLower(s)
		for _, soft := range softSkills {
			if strings.Contains(lower, soft) {
				n++
				break
			}
		}
	}
	return n
}

func evaluateKeywords(in *input) Evaluation {
	ev := Evaluation{Category: types.CategoryKeywords}

	text := strings.Join(in.resume.TextFields(), " ")
	count := len(in.allowed.KeywordsIn(text))
	density := float64(count) / float64(max(len(strings.Fields(text)), 1))

	switch {
	case count >= 20 || density >= 0.03:
		ev.Score += 15
		ev.tip("Excellent keyword optimization")
	case count >= 12 || density >= 0.02:
		ev.Score += 10
		ev.tip("Good keyword usage")
	case count >= 6 || density >= 0.01:
		ev.Score += 5
		ev.tip("Add more industry-relevant keywords")
		ev.issue(types.IssueWeakKeywords, issueCategoryKeywords, "Low keyword density", types.SeverityMinor,
			"Higher keyword density helps ATS systems match your resume to job postings",
			"Include more industry-specific keywords from job descriptions")
	default:
		ev.tip("Include more industry-specific keywords")
		ev.issue(types.IssueWeakKeywords, issueCategoryKeywords, "Very low keyword density", types.SeverityMajor,
			"ATS systems rely heavily on keywords to match candidates to jobs",
			"Add relevant industry keywords, technical terms, and job-specific terminology")
	}
	return ev
}

// recognizedSet indexes the distinct recognized skills.
func recognizedSet(recognized []string) map[string]bool {
	return setOf(recognized...)
}

// projectSkillHits returns how many of the candidate's recognized skills a
// project mentions, via the shared unigram/bigram tokenizer.
func projectSkillHits(project string, own map[string]bool) int {
	hits := 0
	for tok := range skills.TokenSet(project) {
		if own[tok] {
			hits++
		}
	}
	return hits
}
