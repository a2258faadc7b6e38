package types

// Suggestion priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// SkillProjectGap is a group of declared skills that no project demonstrates.
type SkillProjectGap struct {
	Type     string   `json:"type"`
	Skills   []string `json:"skills"`
	Domain   string   `json:"domain"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
}

// ActionableSuggestion is a concrete remediation step.
type ActionableSuggestion struct {
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example"`
	Impact     string `json:"impact"`
}

// CorrectionsBundle carries recommendations derived from a scored résumé.
type CorrectionsBundle struct {
	RecommendedKeywords   []string               `json:"recommendedKeywords"`
	ActionVerbs           []string               `json:"actionVerbs"`
	StructureTips         []string               `json:"structureTips"`
	SampleBulletRewrites  []string               `json:"sampleBulletRewrites"`
	SkillProjectGaps      []SkillProjectGap      `json:"skillProjectGaps"`
	ActionableSuggestions []ActionableSuggestion `json:"actionableSuggestions"`
	PrimaryDomain         string                 `json:"primaryDomain,omitempty"`
	DetectedDomains       []string               `json:"detectedDomains"`
}

// JobMatchResult compares a résumé against a job description.
type JobMatchResult struct {
	HasJobDescription bool     `json:"has_job_description"`
	MatchPercentage   float64  `json:"match_percentage"`
	MatchRating       string   `json:"match_rating"`
	MatchColor        string   `json:"match_color"`
	JobKeywordsCount  int      `json:"job_keywords_count"`
	MatchedKeywords   []string `json:"matched_keywords"`
	MissingKeywords   []string `json:"missing_keywords"`
	Recommendation    string   `json:"recommendation"`
}
