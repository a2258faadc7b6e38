package corrections

import (
	"testing"

	"github.com/jonathan/resume-ats/internal/skills"
	"github.com/jonathan/resume-ats/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	allowed, err := skills.Default()
	require.NoError(t, err)
	return NewGenerator(allowed)
}

func TestInferDomains(t *testing.T) {
	got := InferDomains([]string{"react", "node", "express", "mongodb"}, "")
	assert.Equal(t, []DomainScore{
		{Domain: "backend", Score: 6},
		{Domain: "frontend", Score: 3},
		{Domain: "database", Score: 3},
	}, got)
}

func TestInferDomains_FullstackBoost(t *testing.T) {
	got := InferDomains([]string{"react", "html", "css", "node", "express"}, "")
	require.Len(t, got, 3)
	assert.Equal(t, DomainScore{Domain: "frontend", Score: 7}, got[0])
	assert.Equal(t, DomainScore{Domain: "backend", Score: 6}, got[1])
	assert.Equal(t, DomainScore{Domain: "fullstack", Score: 5}, got[2])
}

func TestInferDomains_ContextOnly(t *testing.T) {
	got := InferDomains(nil, "Trained TensorFlow models on a Spark cluster")
	assert.Equal(t, []DomainScore{
		{Domain: "machine_learning", Score: 0.5},
		{Domain: "data_engineering", Score: 0.5},
	}, got)
	assert.Empty(t, activeDomains(got))
}

func TestInferDomains_Nothing(t *testing.T) {
	assert.Empty(t, InferDomains([]string{"python", "leadership"}, "wrote some code"))
}

func TestBucketOf(t *testing.T) {
	tests := map[string]string{
		"react":      "web",
		"express":    "web",
		"pandas":     "data_ml",
		"tensorflow": "data_ml",
		"docker":     "devops_cloud",
		"aws":        "devops_cloud",
		"mongodb":    "db",
		"redis":      "db",
		"kotlin":     "mobile",
		"leadership": "",
	}
	for skill, want := range tests {
		assert.Equal(t, want, bucketOf(skill), skill)
	}
}

func TestGenerate_WebProfile(t *testing.T) {
	g := newTestGenerator(t)
	r := types.ResumeRecord{
		Skills:   []string{"React", "Node.js", "Express", "MongoDB", "HTML", "CSS"},
		Projects: []string{"Built a web portal using React and Node"},
	}
	breakdown := types.ScoreBreakdown{Projects: 5, Skills: 18, Format: 5}

	got := g.Generate(r, breakdown)

	assert.Equal(t, "frontend", got.PrimaryDomain)
	assert.Equal(t, []string{"frontend", "backend", "fullstack", "database"}, got.DetectedDomains)
	assert.Equal(t, []string{
		"typescript", "vue", "tailwind", "graphql", "nextjs", "testing library",
		"cypress", "storybook", "accessibility", "performance optimization", "pwa", "python",
	}, got.RecommendedKeywords)
	assert.Len(t, got.ActionVerbs, 10)
	assert.Equal(t, "Designed", got.ActionVerbs[0])

	require.Len(t, got.StructureTips, 2)
	require.Len(t, got.SampleBulletRewrites, 1)
	assert.Equal(t,
		"Before: Built a web portal using React and Node\nAfter: Developed a web app using react, improving performance by 25% and reducing errors by 15%.",
		got.SampleBulletRewrites[0])

	require.Len(t, got.SkillProjectGaps, 2)
	assert.Equal(t, "web", got.SkillProjectGaps[0].Domain)
	assert.Equal(t, []string{"express", "html", "css"}, got.SkillProjectGaps[0].Skills)
	assert.Equal(t, types.PriorityHigh, got.SkillProjectGaps[0].Severity)
	assert.Equal(t, "You listed express, html, css in your skills but no projects demonstrate them", got.SkillProjectGaps[0].Message)
	assert.Equal(t, "db", got.SkillProjectGaps[1].Domain)
	assert.Equal(t, types.PriorityMedium, got.SkillProjectGaps[1].Severity)
	assert.Equal(t, "Skill 'mongodb' is listed but not demonstrated in projects", got.SkillProjectGaps[1].Message)

	var categories []string
	for _, s := range got.ActionableSuggestions {
		categories = append(categories, s.Category)
	}
	assert.Equal(t, []string{
		"Add Missing Project", "Add Quantifiable Metrics", "Add Experience", "Expand Skills Section", "Add Achievements",
	}, categories)
	assert.Equal(t, "Example: Build a full-stack web application with user authentication using express, html",
		got.ActionableSuggestions[0].Example)
	assert.Equal(t, "Add 2 more relevant technical skills to reach optimal range", got.ActionableSuggestions[3].Suggestion)
}

func TestGenerate_EmptyResume(t *testing.T) {
	g := newTestGenerator(t)

	got := g.Generate(types.ResumeRecord{}, types.ScoreBreakdown{})

	assert.Empty(t, got.PrimaryDomain)
	assert.NotNil(t, got.DetectedDomains)
	assert.Empty(t, got.DetectedDomains)
	assert.Equal(t, []string{"sql", "git", "python", "javascript", "docker"}, got.RecommendedKeywords)
	assert.Len(t, got.StructureTips, 1)
	assert.NotNil(t, got.SampleBulletRewrites)
	assert.Empty(t, got.SampleBulletRewrites)
	assert.NotNil(t, got.SkillProjectGaps)
	assert.Empty(t, got.SkillProjectGaps)

	var categories []string
	for _, s := range got.ActionableSuggestions {
		categories = append(categories, s.Category)
	}
	assert.Equal(t, []string{
		"Add Quantifiable Metrics", "Add Experience", "Expand Skills Section", "Improve Resume Structure", "Add Achievements",
	}, categories)
}

func TestGenerate_SuggestionsAreCapped(t *testing.T) {
	g := newTestGenerator(t)
	r := types.ResumeRecord{
		Skills: []string{
			"React", "Express", "Pandas", "TensorFlow", "Docker", "AWS", "MySQL", "Redis", "Kotlin", "Swift",
		},
		Projects: []string{"A small thing", "Another thing"},
	}

	got := g.Generate(r, types.ScoreBreakdown{})

	assert.LessOrEqual(t, len(got.ActionableSuggestions), maxSuggestions)
	assert.LessOrEqual(t, len(got.RecommendedKeywords), maxRecommendedKeywords)
	for i := 1; i < len(got.ActionableSuggestions); i++ {
		assert.LessOrEqual(t,
			priorityRank(got.ActionableSuggestions[i-1].Priority),
			priorityRank(got.ActionableSuggestions[i].Priority))
	}
}

func TestStructureTips_MetricSuppressesSecondTip(t *testing.T) {
	assert.Len(t, structureTips([]string{"Cut latency by 30% for checkout"}), 1)
	assert.Len(t, structureTips([]string{"Served 5000 users daily"}), 1)
	assert.Len(t, structureTips([]string{"Wrote docs"}), 2)
}

func TestGenerate_Deterministic(t *testing.T) {
	g := newTestGenerator(t)
	r := types.ResumeRecord{
		Skills:      []string{"Python", "Pandas", "NumPy", "SQL", "Docker", "AWS"},
		Projects:    []string{"Developed a churn model with pandas", "Deployed an API on AWS"},
		Internships: []string{"Data intern working with SQL"},
	}
	first := g.Generate(r, types.ScoreBreakdown{Projects: 8})
	for range 5 {
		assert.Equal(t, first, g.Generate(r, types.ScoreBreakdown{Projects: 8}))
	}
}
