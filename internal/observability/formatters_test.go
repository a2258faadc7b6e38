package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/resume-ats/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.ATSResult {
	res := &types.ATSResult{
		TotalScore:  74,
		Rating:      types.RatingGood,
		RatingColor: "blue",
		ScoreBreakdown: types.ScoreBreakdown{
			ContactInfo: 5, Education: 15, Experience: 12, Skills: 20,
			Keywords: 5, Format: 5, Projects: 9, Achievements: 0, SpellingGrammar: 4,
		},
		FlaggedIssues: types.NewFlaggedIssues(),
		ScoreAdjustments: []types.ScoreAdjustment{
			{Name: "thin_content", Points: -5, Reason: "Fewer than 150 words of content"},
		},
		Strengths:    []string{"Strong education section", "Strong skills section"},
		Improvements: []string{"Improve achievements section"},
	}
	res.FlaggedIssues.Add(types.Issue{Category: "Achievements", Issue: "Missing achievements section", Severity: types.SeverityCritical})
	return res
}

func TestPrintATSResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "74/100 (Good)")
	assert.Contains(t, output, "skills")
	assert.Contains(t, output, "20/25")
	assert.Contains(t, output, " -5 Fewer than 150 words of content")
	assert.Contains(t, output, "1 critical, 0 major, 0 minor")
	assert.Contains(t, output, "[Achievements] Missing achievements section")
	assert.Contains(t, output, "Strong skills section")
	assert.NotContains(t, output, "JOB MATCH")
}

func TestPrintATSResult_WithJobMatch(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResult()
	res.JobMatch = &types.JobMatchResult{
		HasJobDescription: true,
		MatchPercentage:   66.7,
		MatchRating:       "Fair Match",
		JobKeywordsCount:  3,
		MatchedKeywords:   []string{"docker", "python"},
		MissingKeywords:   []string{"terraform"},
		Recommendation:    "Consider adding: terraform",
	}

	NewPrinter(&buf).PrintATSResult(res)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "66.7% (Fair Match)")
	assert.Contains(t, output, "terraform")
}

func TestPrint_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSResult(nil)
	p.PrintGrammarReport(nil)
	p.PrintJobMatch(nil)

	assert.Empty(t, buf.String())
}

func TestPrintGrammarReport(t *testing.T) {
	var buf bytes.Buffer
	g := &types.GrammarCheckResult{TextCheckResult: types.NewTextCheckResult()}
	for _, w := range []string{"teh", "recieve", "untill", "seperate", "managment", "enviroment"} {
		g.SpellingErrors = append(g.SpellingErrors, types.SpellingError{Word: w, Correction: "x", Source: "projects"})
	}
	g.GrammarErrors = append(g.GrammarErrors, types.GrammarError{Text: "the the", Issue: "Remove duplicate articles", Source: "projects"})
	g.TotalErrors = 7
	g.Summary = types.GrammarSummary{TotalErrors: 7, SpellingCount: 6, GrammarCount: 1}

	NewPrinter(&buf).PrintGrammarReport(g)
	output := buf.String()

	assert.Contains(t, output, "GRAMMAR CHECK")
	assert.Contains(t, output, "Errors:   7 (spelling 6, grammar 1, terminology 0)")
	assert.Contains(t, output, "teh → x (projects)")
	assert.Contains(t, output, "... and 1 more")
	assert.NotContains(t, output, "enviroment")
	assert.Contains(t, output, `"the the": Remove duplicate articles`)
	assert.NotContains(t, output, "Terminology:")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("é", 100))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking([]RankedEntry{
		{Source: "alice.json", Result: types.ATSResult{TotalScore: 91, Rating: types.RatingExcellent}},
		{Source: "bob.json", Result: types.ATSResult{TotalScore: 60, Rating: types.RatingFair}},
		{Source: "broken.json", Err: errors.New("invalid JSON")},
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "alice.json")
	assert.Contains(t, lines[1], "91")
	assert.Contains(t, lines[1], "Excellent")
	assert.Contains(t, lines[3], "error: invalid JSON")
}
