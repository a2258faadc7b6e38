// Package jobmatch compares a résumé's keywords against a job description.
package jobmatch

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
)

const (
	// MinDescriptionLength is the shortest job description (in characters) worth analyzing.
	MinDescriptionLength = 50

	maxMatched          = 15
	maxMissing          = 10
	maxRecommendMissing = 5
)

// Match ratings.
const (
	RatingExcellent = "Excellent Match"
	RatingGood      = "Good Match"
	RatingFair      = "Fair Match"
	RatingNeedsWork = "Needs Work"
)

// Matcher extracts allowlist keywords from job descriptions and résumés.
type Matcher struct {
	allowed *skills.AllowedSet
}

// NewMatcher returns a Matcher over allowed.
func NewMatcher(allowed *skills.AllowedSet) *Matcher {
	return &Matcher{allowed: allowed}
}

// Analyze matches r against its own JobDescription. It returns nil when the
// description is missing or shorter than MinDescriptionLength.
func (m *Matcher) Analyze(r types.ResumeRecord) *types.JobMatchResult {
	return m.AnalyzeText(r, r.JobDescription)
}

// AnalyzeText matches r against jobDescription, which may be plain text or HTML.
func (m *Matcher) AnalyzeText(r types.ResumeRecord, jobDescription string) *types.JobMatchResult {
	text := strings.TrimSpace(PlainText(jobDescription))
	if utf8.RuneCountInString(text) < MinDescriptionLength {
		return nil
	}

	jobKeywords := m.allowed.KeywordsIn(text)
	have := m.ResumeKeywords(r)

	matched := []string{}
	missing := []string{}
	for _, kw := range jobKeywords {
		if have[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	pct := 0.0
	if len(jobKeywords) > 0 {
		pct = float64(len(matched)) / float64(len(jobKeywords)) * 100
	}
	rating, color := band(pct)

	return &types.JobMatchResult{
		HasJobDescription: true,
		MatchPercentage:   math.Round(pct*10) / 10,
		MatchRating:       rating,
		MatchColor:        color,
		JobKeywordsCount:  len(jobKeywords),
		MatchedKeywords:   matched[:min(len(matched), maxMatched)],
		MissingKeywords:   missing[:min(len(missing), maxMissing)],
		Recommendation:    Recommendation(pct, missing[:min(len(missing), maxRecommendMissing)]),
	}
}

// ResumeKeywords returns the résumé's keyword set: recognized declared skills
// plus allowlist terms found in projects, experience and internships.
func (m *Matcher) ResumeKeywords(r types.ResumeRecord) map[string]bool {
	have := map[string]bool{}
	for _, s := range m.allowed.Recognize(r.Skills) {
		have[s] = true
	}
	parts := make([]string, 0, len(r.Projects)+len(r.Experience)+len(r.Internships))
	parts = append(parts, r.Projects...)
	parts = append(parts, r.Experience...)
	parts = append(parts, r.Internships...)
	for _, kw := range m.allowed.KeywordsIn(strings.Join(parts, " ")) {
		have[kw] = true
	}
	return have
}

func band(pct float64) (rating, color string) {
	switch {
	case pct >= 80:
		return RatingExcellent, "green"
	case pct >= 60:
		return RatingGood, "blue"
	case pct >= 40:
		return RatingFair, "yellow"
	}
	return RatingNeedsWork, "red"
}

// Recommendation returns advice for a match percentage, naming up to five missing keywords.
func Recommendation(pct float64, missing []string) string {
	kw := strings.Join(missing, ", ")
	switch {
	case pct >= 80:
		return "Your resume is well-aligned with this job. Focus on highlighting your relevant experience during interviews."
	case pct >= 60:
		if kw != "" {
			return "Good match! Consider adding these keywords to strengthen your application: " + kw
		}
		return "Good match! Review the job description for any specific requirements you can emphasize."
	case pct >= 40:
		if kw != "" {
			return fmt.Sprintf("Moderate match. Add these missing skills if you have them: %s. Consider tailoring your resume for this role.", kw)
		}
		return "Moderate match. Consider customizing your resume to better highlight relevant experience."
	}
	if kw != "" {
		return fmt.Sprintf("Low match. This role requires skills you may not have listed: %s. Consider acquiring these skills or targeting roles that better match your profile.", kw)
	}
	return "Low match. This role may require different skills than what's on your resume. Consider roles that better match your current expertise."
}

// PlainText flattens an HTML job posting to text, one block element per
// line. Input without markup is returned unchanged.
func PlainText(s string) string {
	if !strings.Contains(s, "<") || !strings.Contains(s, ">") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, h5, h6, tr, dt, dd").AppendHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
