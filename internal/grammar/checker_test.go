package grammar

import (
	"testing"

	"github.com/jonathan/resume-ats/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckText_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		res := CheckText(text, "projects")
		assert.Zero(t, res.TotalErrors)
		assert.NotNil(t, res.SpellingErrors)
		assert.NotNil(t, res.Corrections)
	}
}

func TestCheckText_Spelling(t *testing.T) {
	res := CheckText("Managed enviroment setup and recieve alerts, teh end", "projects")

	require.Len(t, res.SpellingErrors, 3)
	assert.Equal(t, "enviroment", res.SpellingErrors[0].Word)
	assert.Equal(t, "environment", res.SpellingErrors[0].Correction)
	assert.Equal(t, types.GrammarSeverityHigh, res.SpellingErrors[0].Severity)
	assert.Equal(t, "recieve", res.SpellingErrors[1].Word)
	assert.Equal(t, types.GrammarSeverityHigh, res.SpellingErrors[1].Severity)
	assert.Equal(t, "teh", res.SpellingErrors[2].Word)
	assert.Equal(t, types.GrammarSeverityMedium, res.SpellingErrors[2].Severity)
	assert.Equal(t, "projects", res.SpellingErrors[0].Source)
	assert.Equal(t, 3, res.TotalErrors)

	require.Len(t, res.Corrections, 3)
	assert.Equal(t, types.CorrectionSpelling, res.Corrections[0].Type)
}

func TestCheckText_CaseInsensitiveSpelling(t *testing.T) {
	res := CheckText("Excellant Managment", "achievements")
	require.Len(t, res.SpellingErrors, 2)
	assert.Equal(t, "excellant", res.SpellingErrors[0].Word)
	assert.Equal(t, "managment", res.SpellingErrors[1].Word)
}

func TestCheckText_TechnicalTermsAreClean(t *testing.T) {
	clean := []string{
		"Python Java C++ C# Go JS TS AWS GCP Docker Kubernetes SQL NoSQL",
		"B.Tech Computer Science",
		"REST APIs, CI/CD, ML, NLP, UI/UX, IoT",
		"Built a RAG pipeline with LLMs and GPT on GPU clusters",
		"Worked on Monday deliveries in June",
		"I led the team",
	}

	for _, text := range clean {
		t.Run(text, func(t *testing.T) {
			res := CheckText(text, "skills")
			assert.Zero(t, res.TotalErrors, "unexpected errors: %+v", res)
		})
	}
}

func TestCheckText_Patterns(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		issue string
		match string
	}{
		{"lowercase i", "Then i built a compiler", issueLowercaseI, "i"},
		{"day name", "Shipped releases every friday", issueDayName, "friday"},
		{"month name", "Joined in june 2023", issueMonthName, "june"},
		{"article repeat", "Built the the dashboard", issueArticleRepeat, "the the"},
		{"article repeat mixed case", "The the dashboard", issueArticleRepeat, "The the"},
		{"verb repeat", "Service was was deployed", issueVerbRepeat, "was was"},
		{"conjunction repeat", "React and and Redux", issueConjRepeat, "and and"},
		{"contraction", "I dont stop", issueContraction, "dont"},
		{"contraction capitalized", "Doesnt matter", issueContraction, "Doesnt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := CheckText(tt.text, "projects")
			require.Len(t, res.GrammarErrors, 1, "%+v", res.GrammarErrors)
			assert.Equal(t, tt.issue, res.GrammarErrors[0].Issue)
			assert.Equal(t, tt.match, res.GrammarErrors[0].Text)
			assert.Equal(t, types.GrammarSeverityMedium, res.GrammarErrors[0].Severity)
			require.Len(t, res.Suggestions, 1)
			assert.Equal(t, `Review usage of "`+tt.match+`"`, res.Suggestions[0].Suggestion)
		})
	}
}

func TestCheckText_MayIsNotAMonth(t *testing.T) {
	res := CheckText("Users may sign in", "projects")
	assert.Empty(t, res.GrammarErrors)
}

func TestCheckText_LowercaseIInAbbreviations(t *testing.T) {
	for _, text := range []string{"faster, i.e. cheaper", "async i/o layer", "the i-th element"} {
		res := CheckText(text, "projects")
		assert.Empty(t, res.GrammarErrors, text)
	}
}

func TestCheckText_RepeatsDoNotOverlap(t *testing.T) {
	res := CheckText("the the the", "projects")
	require.Len(t, res.GrammarErrors, 1)
	assert.Equal(t, 0, res.GrammarErrors[0].Position)
}

func TestCheckText_SkipsAfterSingleLetterAbbreviation(t *testing.T) {
	res := CheckText("M. june", "degree")
	assert.Empty(t, res.GrammarErrors)
}

func TestCheckText_ProfessionalTerms(t *testing.T) {
	res := CheckText("Btech graduate, see resumee. PhD and MBA are fine", "degree")

	require.Len(t, res.ProfessionalErrors, 2)
	assert.Equal(t, "resumee", res.ProfessionalErrors[0].Term)
	assert.Equal(t, "résumé", res.ProfessionalErrors[0].Correction)
	assert.Equal(t, "btech", res.ProfessionalErrors[1].Term)
	assert.Equal(t, "B.Tech", res.ProfessionalErrors[1].Correction)
	assert.Equal(t, types.GrammarSeverityLow, res.ProfessionalErrors[0].Severity)

	// B.Tech is already the preferred form.
	assert.Empty(t, CheckText("B.Tech in IT", "degree").ProfessionalErrors)
}

func TestCheckResume(t *testing.T) {
	r := types.ResumeRecord{
		Name:         "Asha Rao",
		Degree:       "btech",
		University:   "Anna Univeristy",
		Skills:       []string{"Python", "SQL"},
		Projects:     []string{"Built teh app", "Improved performence"},
		Internships:  []string{},
		Achievements: []string{"Won the the hackathon"},
	}

	res := CheckResume(r)

	assert.Equal(t, 5, res.TotalErrors)
	assert.Equal(t, res.TotalErrors, res.Summary.TotalErrors)
	assert.Equal(t, 3, res.Summary.SpellingCount)
	assert.Equal(t, 1, res.Summary.GrammarCount)
	assert.Equal(t, 1, res.Summary.ProfessionalCount)
	assert.Equal(t, 4, res.Summary.SectionsWithErrors)
	assert.Equal(t, types.SeverityBreakdown{High: 2, Medium: 2, Low: 1}, res.Summary.SeverityBreakdown)

	assert.Contains(t, res.BySection, SectionName)
	assert.Contains(t, res.BySection, SectionSkills)
	assert.NotContains(t, res.BySection, SectionInternships)
	assert.Equal(t, 2, res.BySection[SectionProjects].TotalErrors)
	assert.Equal(t, "Built teh app Improved performence", res.BySection[SectionProjects].SpellingErrors[0].Context)
}

func TestCheckResume_Empty(t *testing.T) {
	res := CheckResume(types.ResumeRecord{})
	assert.Zero(t, res.TotalErrors)
	assert.Empty(t, res.BySection)
	assert.NotNil(t, res.SpellingErrors)
}

func TestCorrectionSuggestions(t *testing.T) {
	res := CheckResume(types.ResumeRecord{
		Degree:   "btech",
		Projects: []string{"teh app", "I dont know"},
	})

	got := CorrectionSuggestions(res)
	require.Len(t, got, 3)

	assert.Equal(t, types.CorrectionSpelling, got[0].Type)
	assert.Equal(t, "Change 'teh' to 'the'", got[0].Suggestion)
	assert.Equal(t, SectionProjects, got[0].Section)

	assert.Equal(t, types.CorrectionProfessional, got[1].Type)
	assert.Equal(t, "Use 'B.Tech' instead of 'btech'", got[1].Suggestion)

	assert.Equal(t, types.CorrectionGrammar, got[2].Type)
	assert.Equal(t, "Review grammar", got[2].Correction)
	assert.Equal(t, "Review: "+issueContraction, got[2].Suggestion)
}

func TestApplyCorrections(t *testing.T) {
	corrections := []types.Correction{
		{Original: "teh", Corrected: "the", Type: types.CorrectionSpelling},
		{Original: "btech", Corrected: "B.Tech", Type: types.CorrectionProfessional},
		{Original: "dont", Corrected: "don't", Type: types.CorrectionGrammar},
	}

	got := ApplyCorrections("Teh Btech grad; tehran stays; dont touch", corrections)
	assert.Equal(t, "the B.Tech grad; tehran stays; dont touch", got)
}

func TestFixSections(t *testing.T) {
	fixed := FixSections(types.ResumeRecord{
		Name:     "Asha",
		Projects: []string{"Built a knowlege base", "Clean project"},
		Skills:   []string{"Go"},
	})

	assert.Equal(t, map[string]string{
		SectionProjects: "Built a knowledge base Clean project",
	}, fixed)
}
