package ats

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-ats/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	c, err := NewCalculator()
	require.NoError(t, err)
	return c
}

// strongResume is a complete, clean résumé that should land in the top band.
func strongResume() map[string]any {
	return map[string]any{
		"name":       "Priya Sharma",
		"email":      "priya.sharma@example.com",
		"phone":      "+91 98765 43210",
		"degree":     "B.Tech Computer Science",
		"university": "National Institute of Technology",
		"cgpa":       8.7,
		"skills": []any{
			"Python", "Java", "React", "Node.js", "Django", "Docker", "Kubernetes", "AWS",
			"PostgreSQL", "MongoDB", "Pandas", "NumPy", "Leadership", "Communication", "Teamwork",
		},
		"projects": []any{
			"Developed a Django and React web portal with PostgreSQL that served 5000 users and reduced page load time by 40%",
			"Built a Python and Pandas analytics pipeline on AWS that processed two million records daily, improving report speed by 35%",
			"Deployed Docker and Kubernetes microservices written in Java and Node.js, cutting deployment time by 60% for the team",
		},
		"internships": []any{
			"Software Engineering Intern at Infosys: developed REST APIs, implemented caching and managed weekly deployments",
			"Data Analyst Intern at Flipkart: built dashboards, designed experiments and improved forecasting accuracy",
		},
		"achievements": []any{"Winner of Smart India Hackathon 2023", "AWS Certified Cloud Practitioner"},
	}
}

func adjustmentNamed(res types.ATSResult, name string) (types.ScoreAdjustment, bool) {
	for _, a := range res.ScoreAdjustments {
		if a.Name == name {
			return a, true
		}
	}
	return types.ScoreAdjustment{}, false
}

func assertBounds(t *testing.T, res types.ATSResult) {
	t.Helper()
	assert.GreaterOrEqual(t, res.TotalScore, 0)
	assert.LessOrEqual(t, res.TotalScore, 100)
	for _, c := range types.Categories {
		score := res.ScoreBreakdown.Get(c)
		assert.GreaterOrEqual(t, score, 0, c)
		assert.LessOrEqual(t, score, c.Max(), c)
	}
	assert.Equal(t, max(0, min(100, res.ScoreBreakdown.Sum()+res.AdjustmentTotal())), res.TotalScore)
}

func TestCalculate_StrongResume(t *testing.T) {
	res := newTestCalculator(t).Calculate(strongResume())

	assertBounds(t, res)
	assert.GreaterOrEqual(t, res.TotalScore, 88)
	assert.Equal(t, types.RatingExcellent, res.Rating)
	assert.Equal(t, "green", res.RatingColor)
	for _, c := range types.Categories {
		assert.Equal(t, c.Max(), res.ScoreBreakdown.Get(c), c)
	}
	assert.Empty(t, res.FlaggedIssues.Critical)
	assert.Empty(t, res.FlaggedIssues.Major)
	assert.Zero(t, res.GrammarDetails.TotalErrors)
	assert.Nil(t, res.JobMatch)

	boost, ok := adjustmentNamed(res, AdjustmentDegreeProjects)
	require.True(t, ok)
	assert.Equal(t, 3, boost.Points)
	_, inflated := adjustmentNamed(res, AdjustmentSkillInflation)
	assert.False(t, inflated)

	assert.Contains(t, res.Strengths, "Strong skills section")
	assert.Contains(t, res.Strengths, "Strong projects section")
	assert.Empty(t, res.Improvements)
}

func TestCalculate_SingleSkill(t *testing.T) {
	res := newTestCalculator(t).Calculate(map[string]any{"skills": []any{"Excel"}})

	assertBounds(t, res)
	assert.Equal(t, 4, res.ScoreBreakdown.Skills)
	assert.Zero(t, res.ScoreBreakdown.ContactInfo)
	assert.Zero(t, res.ScoreBreakdown.Education)
	assert.Zero(t, res.ScoreBreakdown.Projects)
	assert.Equal(t, types.RatingNeedsImprovement, res.Rating)
	assert.Equal(t, "red", res.RatingColor)

	critical := issueNames(res.FlaggedIssues.Critical)
	assert.Contains(t, critical, "Missing email address")
	assert.Contains(t, critical, "Missing degree information")
	assert.Contains(t, critical, "Missing projects section")
}

func TestCalculate_EmptyInput(t *testing.T) {
	res := newTestCalculator(t).Calculate(map[string]any{})

	assertBounds(t, res)
	assert.Equal(t, types.RatingNeedsImprovement, res.Rating)
	assert.Zero(t, res.TotalScore)

	for _, category := range []string{issueCategoryContact, issueCategoryEducation, issueCategorySkills, issueCategoryProjects} {
		found := false
		for _, issue := range res.FlaggedIssues.Critical {
			if issue.Category == category {
				found = true
			}
		}
		assert.True(t, found, "no critical issue for %s", category)
	}

	empty, ok := adjustmentNamed(res, AdjustmentEmptySections)
	require.True(t, ok)
	assert.Equal(t, -12, empty.Points)
	thin, ok := adjustmentNamed(res, AdjustmentThinContent)
	require.True(t, ok)
	assert.Equal(t, -10, thin.Points)

	assert.NotNil(t, res.Tips)
	assert.NotNil(t, res.Strengths)
	assert.NotNil(t, res.Corrections.DetectedDomains)
	assert.Nil(t, res.JobMatch)
}

func TestCalculate_NilInput(t *testing.T) {
	res := newTestCalculator(t).Calculate(nil)
	assertBounds(t, res)
	assert.Equal(t, types.RatingNeedsImprovement, res.Rating)
}

func TestCalculate_Deterministic(t *testing.T) {
	c := newTestCalculator(t)
	inputs := []map[string]any{
		strongResume(),
		{},
		{"skills": "Python, SQL; Docker | Git", "projects": "Built a thing\nMade another"},
	}
	for _, in := range inputs {
		first := c.Calculate(in)
		for range 3 {
			assert.Equal(t, first, c.Calculate(in))
		}
	}
}

func TestCalculate_Bounds(t *testing.T) {
	c := newTestCalculator(t)
	verbose := strings.Repeat("Developed scalable Python services on AWS with Docker. ", 200)
	inputs := []map[string]any{
		{},
		strongResume(),
		{"cgpa": "not a number", "skills": 42, "projects": map[string]any{"x": 1}},
		{"cgpa": 11.5, "mastersCGPA": -4},
		{"projects": []any{verbose}, "skills": []any{"python"}},
		{"skills": []any{strings.Repeat("python ", 100)}},
	}
	for _, in := range inputs {
		assertBounds(t, c.Calculate(in))
	}
}

func TestCalculate_SkillsMonotonic(t *testing.T) {
	c := newTestCalculator(t)
	base := strongResume()
	base["skills"] = []any{"Excel"}

	additions := []string{
		"Python", "Leadership", "React", "Docker", "MySQL", "Pandas", "Java", "Communication",
		"AWS", "Node.js", "Teamwork", "Kubernetes", "Django", "Go", "Redis", "Tableau",
	}

	prev := c.Calculate(base).ScoreBreakdown.Skills
	declared := []any{"Excel"}
	for _, s := range additions {
		declared = append(declared, s)
		in := strongResume()
		in["skills"] = append([]any(nil), declared...)
		got := c.Calculate(in).ScoreBreakdown.Skills
		assert.GreaterOrEqual(t, got, prev, "adding %s", s)
		prev = got
	}
	assert.Equal(t, types.CategorySkills.Max(), prev)
}

func TestCalculate_JobDescription(t *testing.T) {
	c := newTestCalculator(t)

	short := strongResume()
	short["job_description"] = "Python developer with Docker experience." // 40 characters
	require.Len(t, short["job_description"], 40)
	assert.Nil(t, c.Calculate(short).JobMatch)

	long := strongResume()
	long["job_description"] = "We need a backend developer with strong Python, Docker and Terraform experience."
	res := c.Calculate(long)
	require.NotNil(t, res.JobMatch)
	assert.True(t, res.JobMatch.HasJobDescription)
	assert.Greater(t, res.JobMatch.MatchPercentage, 0.0)

	alias := strongResume()
	alias["jobDescription"] = long["job_description"]
	assert.Equal(t, res.JobMatch, c.Calculate(alias).JobMatch)
}

func TestCalculate_SkillInflation(t *testing.T) {
	c := newTestCalculator(t)
	hobbies := []any{
		"Origami", "Juggling", "Chess", "Cooking", "Gardening", "Painting", "Sketching", "Yoga",
		"Hiking", "Cycling", "Swimming", "Poetry", "Calligraphy", "Pottery", "Knitting", "Birdwatching",
		"Skating", "Surfing", "Archery", "Fencing", "Rowing", "Sailing",
	}
	in := strongResume()
	in["skills"] = append(append([]any{}, hobbies...), "Python", "Java", "SQL")
	require.Len(t, in["skills"], 25)

	res := c.Calculate(in)
	assertBounds(t, res)

	penalty, ok := adjustmentNamed(res, AdjustmentSkillInflation)
	require.True(t, ok)
	assert.Equal(t, -7, penalty.Points)

	boosts := 0
	for _, a := range res.ScoreAdjustments {
		if a.Points > 0 {
			boosts += a.Points
		}
	}
	assert.LessOrEqual(t, res.TotalScore, max(0, min(100, res.ScoreBreakdown.Sum()-7+boosts)))
}

func TestAdjust_InflationThreshold(t *testing.T) {
	skillsWith := func(recognized int) []string {
		out := []string{"Python", "Java", "SQL"}[:recognized]
		for _, h := range []string{"Origami", "Juggling", "Chess", "Cooking", "Gardening", "Painting", "Sketching", "Yoga"} {
			if len(out) == 8 {
				break
			}
			out = append(out, h)
		}
		return out
	}

	adj, _ := adjust(newInput(t, types.ResumeRecord{Skills: skillsWith(2)}))
	assert.True(t, hasAdjustment(adj, AdjustmentSkillInflation))

	adj, _ = adjust(newInput(t, types.ResumeRecord{Skills: skillsWith(3)}))
	assert.False(t, hasAdjustment(adj, AdjustmentSkillInflation))

	adj, _ = adjust(newInput(t, types.ResumeRecord{Skills: []string{"Origami", "Chess"}}))
	assert.False(t, hasAdjustment(adj, AdjustmentSkillInflation))
}

func TestAdjust_Stuffing(t *testing.T) {
	in := newInput(t, types.ResumeRecord{
		Skills:   []string{"Python"},
		Projects: []string{strings.Repeat("python react docker ", 30)},
	})
	adj, tips := adjust(in)
	assert.True(t, hasAdjustment(adj, AdjustmentStuffing))
	assert.Equal(t, []string{stuffingTip}, tips)
}

func TestAdjust_ContentLength(t *testing.T) {
	words := func(n int) []string {
		return []string{strings.TrimSpace(strings.Repeat("alpha beta gamma delta epsilon ", n/5))}
	}

	tests := []struct {
		name   string
		n      int
		adj    string
		points int
	}{
		{"very thin", 50, AdjustmentThinContent, -10},
		{"thin", 100, AdjustmentThinContent, -5},
		{"verbose", 1100, AdjustmentVerboseContent, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, _ := adjust(newInput(t, types.ResumeRecord{Projects: words(tt.n)}))
			require.True(t, hasAdjustment(adj, tt.adj))
			for _, a := range adj {
				if a.Name == tt.adj {
					assert.Equal(t, tt.points, a.Points)
				}
			}
		})
	}

	adj, _ := adjust(newInput(t, types.ResumeRecord{Projects: words(300)}))
	assert.False(t, hasAdjustment(adj, AdjustmentThinContent))
	assert.False(t, hasAdjustment(adj, AdjustmentVerboseContent))
}

func hasAdjustment(adj []types.ScoreAdjustment, name string) bool {
	for _, a := range adj {
		if a.Name == name {
			return true
		}
	}
	return false
}

func TestRate(t *testing.T) {
	tests := []struct {
		total  int
		rating string
		color  string
	}{
		{100, types.RatingExcellent, "green"},
		{88, types.RatingExcellent, "green"},
		{87, types.RatingGood, "blue"},
		{72, types.RatingGood, "blue"},
		{71, types.RatingFair, "yellow"},
		{55, types.RatingFair, "yellow"},
		{54, types.RatingNeedsImprovement, "red"},
		{0, types.RatingNeedsImprovement, "red"},
	}
	for _, tt := range tests {
		rating, color := Rate(tt.total)
		assert.Equal(t, tt.rating, rating, tt.total)
		assert.Equal(t, tt.color, color, tt.total)
	}
}

func TestStrengthsAndImprovements(t *testing.T) {
	strengths, improvements := strengthsAndImprovements(types.ScoreBreakdown{
		ContactInfo: 5, Education: 12, Experience: 4, Skills: 25, Projects: 9,
	})
	assert.Equal(t, []string{"Strong education section", "Strong skills section"}, strengths)
	assert.Equal(t, []string{
		"Improve experience section", "Improve keywords section", "Improve format section",
		"Improve achievements section", "Improve spelling grammar section",
	}, improvements)
}
