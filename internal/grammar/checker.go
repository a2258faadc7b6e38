// Package grammar implements the dictionary and pattern based spelling and
// grammar checker used by the spelling_grammar category.
//
// Only definite errors are reported. Homophones (there/their, to/too) are not
// checked, and technical abbreviations are never treated as misspellings.
package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
)

// Section names, in the order sections are checked.
const (
	SectionName         = "name"
	SectionDegree       = "degree"
	SectionUniversity   = "university"
	SectionSkills       = "skills"
	SectionProjects     = "projects"
	SectionInternships  = "internships"
	SectionAchievements = "achievements"
)

var (
	lowerWord    = regexp.MustCompile(`\b[a-z]+\b`)
	letterRun    = regexp.MustCompile(`[A-Za-z]+`)
	lowercaseI   = regexp.MustCompile(`\bi\b`)
	dayNames     = regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	monthNames   = regexp.MustCompile(`\b(january|february|march|april|june|july|august|september|october|november|december)\b`)
	contractions = regexp.MustCompile(`(?i)\b(dont|wont|cant|shouldnt|wouldnt|couldnt|havent|hasnt|hadnt|isnt|arent|wasnt|werent|didnt|doesnt)\b`)

	// abbreviationTail matches the end of "B." or "M. " so "B. Tech" style
	// abbreviations do not trigger pattern hits right after them.
	abbreviationTail = regexp.MustCompile(`\b[A-Z]\.\s*$`)
)

// Section is one named block of résumé text.
type Section struct {
	Name string
	Text string
}

// Sections returns the text-bearing sections of a résumé in check order.
// List fields are joined with single spaces.
func Sections(r types.ResumeRecord) []Section {
	return []Section{
		{SectionName, r.Name},
		{SectionDegree, r.Degree},
		{SectionUniversity, r.University},
		{SectionSkills, strings.Join(r.Skills, " ")},
		{SectionProjects, strings.Join(r.Projects, " ")},
		{SectionInternships, strings.Join(r.Internships, " ")},
		{SectionAchievements, strings.Join(r.Achievements, " ")},
	}
}

// CheckText checks one block of text. source labels every reported error.
func CheckText(text, source string) types.TextCheckResult {
	result := types.NewTextCheckResult()
	if strings.TrimSpace(text) == "" {
		return result
	}

	checkSpelling(text, source, &result)
	checkPatterns(text, source, &result)
	checkProfessionalTerms(text, source, &result)

	result.TotalErrors = len(result.SpellingErrors) + len(result.GrammarErrors) + len(result.ProfessionalErrors)
	return result
}

// CheckResume checks every non-empty section and aggregates the results.
func CheckResume(r types.ResumeRecord) types.GrammarCheckResult {
	out := types.GrammarCheckResult{
		TextCheckResult: types.NewTextCheckResult(),
		BySection:       map[string]types.TextCheckResult{},
	}

	for _, sec := range Sections(r) {
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}
		res := CheckText(sec.Text, sec.Name)
		out.BySection[sec.Name] = res

		out.SpellingErrors = append(out.SpellingErrors, res.SpellingErrors...)
		out.GrammarErrors = append(out.GrammarErrors, res.GrammarErrors...)
		out.ProfessionalErrors = append(out.ProfessionalErrors, res.ProfessionalErrors...)
		out.Corrections = append(out.Corrections, res.Corrections...)
		out.Suggestions = append(out.Suggestions, res.Suggestions...)
		if res.TotalErrors > 0 {
			out.Summary.SectionsWithErrors++
		}
	}

	out.TotalErrors = len(out.SpellingErrors) + len(out.GrammarErrors) + len(out.ProfessionalErrors)
	out.Summary.TotalErrors = out.TotalErrors
	out.Summary.SpellingCount = len(out.SpellingErrors)
	out.Summary.GrammarCount = len(out.GrammarErrors)
	out.Summary.ProfessionalCount = len(out.ProfessionalErrors)
	out.Summary.SeverityBreakdown = severityBreakdown(out.TextCheckResult)
	return out
}

func checkSpelling(text, source string, result *types.TextCheckResult) {
	for _, word := range lowerWord.FindAllString(strings.ToLower(text), -1) {
		if technicalExclusions[word] {
			continue
		}
		correction, ok := misspellings[word]
		if !ok {
			continue
		}
		severity := types.GrammarSeverityMedium
		if len(word) > 6 {
			severity = types.GrammarSeverityHigh
		}
		result.SpellingErrors = append(result.SpellingErrors, types.SpellingError{
			Word:       word,
			Correction: correction,
			Context:    text,
			Source:     source,
			Severity:   severity,
		})
		result.Corrections = append(result.Corrections, types.Correction{
			Original:  word,
			Corrected: correction,
			Type:      types.CorrectionSpelling,
		})
	}
}

// patternHit is a grammar match as a byte range of the checked text.
type patternHit struct {
	start, end int
	issue      string
}

func checkPatterns(text, source string, result *types.TextCheckResult) {
	var hits []patternHit
	hits = append(hits, lowercaseIHits(text)...)
	hits = append(hits, regexHits(text, dayNames, issueDayName)...)
	hits = append(hits, regexHits(text, monthNames, issueMonthName)...)
	for _, group := range repeatGroups {
		hits = append(hits, repeatHits(text, group.words, group.issue)...)
	}
	hits = append(hits, regexHits(text, contractions, issueContraction)...)

	for _, h := range hits {
		if afterAbbreviation(text, h.start) {
			continue
		}
		matched := strings.TrimSpace(text[h.start:h.end])
		result.GrammarErrors = append(result.GrammarErrors, types.GrammarError{
			Text:     matched,
			Issue:    h.issue,
			Context:  text,
			Source:   source,
			Position: h.start,
			Severity: types.GrammarSeverityMedium,
		})
		result.Suggestions = append(result.Suggestions, types.GrammarSuggestion{
			Issue:      h.issue,
			Suggestion: fmt.Sprintf(`Review usage of "%s"`, matched),
		})
	}
}

func regexHits(text string, re *regexp.Regexp, issue string) []patternHit {
	var hits []patternHit
	for _, loc := range re.FindAllStringIndex(text, -1) {
		hits = append(hits, patternHit{loc[0], loc[1], issue})
	}
	return hits
}

// lowercaseIHits finds a standalone lower-case "i". Occurrences glued to
// punctuation that forms abbreviations or paths ("i.e.", "i/o", "i-th") are skipped.
func lowercaseIHits(text string) []patternHit {
	var hits []patternHit
	for _, loc := range lowercaseI.FindAllStringIndex(text, -1) {
		if loc[0] > 0 && strings.IndexByte(".-/+#&", text[loc[0]-1]) >= 0 {
			continue
		}
		if loc[1] < len(text) && strings.IndexByte(".-/+#&", text[loc[1]]) >= 0 {
			continue
		}
		hits = append(hits, patternHit{loc[0], loc[1], issueLowercaseI})
	}
	return hits
}

// repeatHits finds a word from words immediately repeated ("the the"),
// separated only by whitespace. Matches do not overlap.
func repeatHits(text string, words map[string]bool, issue string) []patternHit {
	spans := letterRun.FindAllStringIndex(text, -1)
	var hits []patternHit
	for i := 0; i+1 < len(spans); i++ {
		cur, next := spans[i], spans[i+1]
		gap := text[cur[1]:next[0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}
		w := strings.ToLower(text[cur[0]:cur[1]])
		if !words[w] || w != strings.ToLower(text[next[0]:next[1]]) {
			continue
		}
		hits = append(hits, patternHit{cur[0], next[1], issue})
		i++
	}
	return hits
}

func afterAbbreviation(text string, pos int) bool {
	return abbreviationTail.MatchString(text[max(0, pos-10):pos])
}

func checkProfessionalTerms(text, source string, result *types.TextCheckResult) {
	for _, pt := range professionalTerms {
		if !pt.pattern.MatchString(text) {
			continue
		}
		result.ProfessionalErrors = append(result.ProfessionalErrors, types.ProfessionalError{
			Term:       pt.term,
			Correction: pt.correction,
			Context:    text,
			Source:     source,
			Severity:   types.GrammarSeverityLow,
		})
		result.Corrections = append(result.Corrections, types.Correction{
			Original:  pt.term,
			Corrected: pt.correction,
			Type:      types.CorrectionProfessional,
		})
	}
}

func severityBreakdown(res types.TextCheckResult) types.SeverityBreakdown {
	var b types.SeverityBreakdown
	count := func(severity string) {
		switch severity {
		case types.GrammarSeverityHigh:
			b.High++
		case types.GrammarSeverityLow:
			b.Low++
		default:
			b.Medium++
		}
	}
	for _, e := range res.SpellingErrors {
		count(e.Severity)
	}
	for _, e := range res.GrammarErrors {
		count(e.Severity)
	}
	for _, e := range res.ProfessionalErrors {
		count(e.Severity)
	}
	return b
}

// wordPattern matches term as a whole word, case-insensitively.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}
