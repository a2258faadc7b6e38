package types

// Grammar error severities. These are finer-grained than Issue severities
// and only drive the severity breakdown in the summary.
const (
	GrammarSeverityHigh   = "high"
	GrammarSeverityMedium = "medium"
	GrammarSeverityLow    = "low"
)

// Correction kinds.
const (
	CorrectionSpelling     = "spelling"
	CorrectionGrammar      = "grammar"
	CorrectionProfessional = "professional"
)

// SpellingError is a dictionary misspelling.
type SpellingError struct {
	Word       string `json:"word"`
	Correction string `json:"correction"`
	Context    string `json:"context"`
	Source     string `json:"source"`
	Severity   string `json:"severity"`
}

// GrammarError is a pattern hit such as a repeated article.
type GrammarError struct {
	Text     string `json:"text"`
	Issue    string `json:"issue"`
	Context  string `json:"context"`
	Source   string `json:"source"`
	Position int    `json:"position"`
	Severity string `json:"severity"`
}

// ProfessionalError is a misspelled professional term.
type ProfessionalError struct {
	Term       string `json:"term"`
	Correction string `json:"correction"`
	Context    string `json:"context"`
	Source     string `json:"source"`
	Severity   string `json:"severity"`
}

// Correction maps an original token to its replacement.
type Correction struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Type      string `json:"type"`
}

// GrammarSuggestion is a review hint for a grammar pattern hit.
type GrammarSuggestion struct {
	Issue      string `json:"issue"`
	Suggestion string `json:"suggestion"`
}

// TextCheckResult is the result of checking one block of text.
type TextCheckResult struct {
	SpellingErrors     []SpellingError     `json:"spelling_errors"`
	GrammarErrors      []GrammarError      `json:"grammar_errors"`
	ProfessionalErrors []ProfessionalError `json:"professional_errors"`
	TotalErrors        int                 `json:"total_errors"`
	Corrections        []Correction        `json:"corrections"`
	Suggestions        []GrammarSuggestion `json:"suggestions"`
}

// NewTextCheckResult returns an empty result with non-nil slices.
func NewTextCheckResult() TextCheckResult {
	return TextCheckResult{
		SpellingErrors:     []SpellingError{},
		GrammarErrors:      []GrammarError{},
		ProfessionalErrors: []ProfessionalError{},
		Corrections:        []Correction{},
		Suggestions:        []GrammarSuggestion{},
	}
}

// SeverityBreakdown counts errors per grammar severity.
type SeverityBreakdown struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// GrammarSummary condenses a résumé-wide check.
type GrammarSummary struct {
	TotalErrors        int               `json:"total_errors"`
	SpellingCount      int               `json:"spelling_count"`
	GrammarCount       int               `json:"grammar_count"`
	ProfessionalCount  int               `json:"professional_count"`
	SectionsWithErrors int               `json:"sections_with_errors"`
	SeverityBreakdown  SeverityBreakdown `json:"severity_breakdown"`
}

// GrammarCheckResult is the résumé-wide grammar and spelling report.
type GrammarCheckResult struct {
	TextCheckResult
	BySection map[string]TextCheckResult `json:"by_section"`
	Summary   GrammarSummary             `json:"summary"`
}

// CorrectionSuggestion is a user-facing before/after fix.
type CorrectionSuggestion struct {
	Type       string `json:"type"`
	Section    string `json:"section"`
	Original   string `json:"original"`
	Correction string `json:"correction"`
	Context    string `json:"context"`
	Severity   string `json:"severity"`
	Suggestion string `json:"suggestion"`
}
