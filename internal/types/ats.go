package types

import "strings"

// Category is one of the nine fixed scoring dimensions.
type Category string

const (
	CategoryContactInfo     Category = "contact_info"
	CategoryEducation       Category = "education"
	CategoryExperience      Category = "experience"
	CategorySkills          Category = "skills"
	CategoryKeywords        Category = "keywords"
	CategoryFormat          Category = "format"
	CategoryProjects        Category = "projects"
	CategoryAchievements    Category = "achievements"
	CategorySpellingGrammar Category = "spelling_grammar"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryContactInfo,
	CategoryEducation,
	CategoryExperience,
	CategorySkills,
	CategoryKeywords,
	CategoryFormat,
	CategoryProjects,
	CategoryAchievements,
	CategorySpellingGrammar,
}

// categoryMax holds the per-category ceilings. They sum to 100.
var categoryMax = map[Category]int{
	CategoryContactInfo:     5,
	CategoryEducation:       15,
	CategoryExperience:      20,
	CategorySkills:          25,
	CategoryKeywords:        5,
	CategoryFormat:          5,
	CategoryProjects:        15,
	CategoryAchievements:    5,
	CategorySpellingGrammar: 5,
}

// Max returns the ceiling for the category, or 0 for an unknown category.
func (c Category) Max() int {
	return categoryMax[c]
}

// Label returns the human form used in strengths/improvements ("contact info").
func (c Category) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// Clamp limits raw to [0, c.Max()].
func (c Category) Clamp(raw int) int {
	return max(0, min(c.Max(), raw))
}

// ScoreBreakdown holds the clamped score of every category.
type ScoreBreakdown struct {
	ContactInfo     int `json:"contact_info"`
	Education       int `json:"education"`
	Experience      int `json:"experience"`
	Skills          int `json:"skills"`
	Keywords        int `json:"keywords"`
	Format          int `json:"format"`
	Projects        int `json:"projects"`
	Achievements    int `json:"achievements"`
	SpellingGrammar int `json:"spelling_grammar"`
}

func (b *ScoreBreakdown) field(c Category) *int {
	switch c {
	case CategoryContactInfo:
		return &b.ContactInfo
	case CategoryEducation:
		return &b.Education
	case CategoryExperience:
		return &b.Experience
	case CategorySkills:
		return &b.Skills
	case CategoryKeywords:
		return &b.Keywords
	case CategoryFormat:
		return &b.Format
	case CategoryProjects:
		return &b.Projects
	case CategoryAchievements:
		return &b.Achievements
	case CategorySpellingGrammar:
		return &b.SpellingGrammar
	}
	return nil
}

// Get returns the score for a category.
func (b ScoreBreakdown) Get(c Category) int {
	if p := b.field(c); p != nil {
		return *p
	}
	return 0
}

// Set stores the raw score for a category after clamping it to the category range.
func (b *ScoreBreakdown) Set(c Category, raw int) {
	if p := b.field(c); p != nil {
		*p = c.Clamp(raw)
	}
}

// Sum adds up all category scores.
func (b ScoreBreakdown) Sum() int {
	total := 0
	for _, c := range Categories {
		total += b.Get(c)
	}
	return total
}

// ScoreAdjustment records one global penalty (negative points) or boost.
type ScoreAdjustment struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// Rating bands.
const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingFair             = "Fair"
	RatingNeedsImprovement = "Needs Improvement"
)

// ATSResult is the full output of a scoring call.
type ATSResult struct {
	TotalScore       int                `json:"total_score"`
	Rating           string             `json:"rating"`
	RatingColor      string             `json:"rating_color"`
	ScoreBreakdown   ScoreBreakdown     `json:"score_breakdown"`
	Tips             []string           `json:"tips"`
	FlaggedIssues    FlaggedIssues      `json:"flagged_issues"`
	Strengths        []string           `json:"strengths"`
	Improvements     []string           `json:"improvements"`
	Corrections      CorrectionsBundle  `json:"corrections"`
	GrammarDetails   GrammarCheckResult `json:"grammar_details"`
	JobMatch         *JobMatchResult    `json:"job_match"`
	ScoreAdjustments []ScoreAdjustment  `json:"score_adjustments"`
}

// AdjustmentTotal returns the net points added by global adjustments.
func (r *ATSResult) AdjustmentTotal() int {
	total := 0
	for _, a := range r.ScoreAdjustments {
		total += a.Points
	}
	return total
}
