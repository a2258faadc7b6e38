package types

// Severity ranks how badly an issue hurts ATS compatibility.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Issue types reported by the evaluators.
const (
	IssueMissingSection   = "missing_section"
	IssueFormattingErrors = "formatting_errors"
	IssueWeakKeywords     = "weak_keywords"
	IssueMissingContent   = "missing_content"
	IssueMismatch         = "mismatch"
)

// Issue is a single detected résumé defect. Issues are values: once an
// evaluator returns one it is never modified.
type Issue struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Issue       string   `json:"issue"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Fix         string   `json:"fix"`
}

// FlaggedIssues groups issues by severity.
type FlaggedIssues struct {
	Critical []Issue `json:"critical"`
	Major    []Issue `json:"major"`
	Minor    []Issue `json:"minor"`
}

// NewFlaggedIssues returns a FlaggedIssues with empty (non-nil) buckets.
func NewFlaggedIssues() FlaggedIssues {
	return FlaggedIssues{
		Critical: []Issue{},
		Major:    []Issue{},
		Minor:    []Issue{},
	}
}

// Add files each issue under its severity. Unknown severities are treated as minor.
func (f *FlaggedIssues) Add(issues ...Issue) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			f.Critical = append(f.Critical, issue)
		case SeverityMajor:
			f.Major = append(f.Major, issue)
		default:
			f.Minor = append(f.Minor, issue)
		}
	}
}

// Count returns the total number of flagged issues.
func (f *FlaggedIssues) Count() int {
	return len(f.Critical) + len(f.Major) + len(f.Minor)
}

// InCategory returns all issues for the given display category, most severe first.
func (f *FlaggedIssues) InCategory(category string) []Issue {
	var out []Issue
	for _, bucket := range [][]Issue{f.Critical, f.Major, f.Minor} {
		for _, issue := range bucket {
			if issue.Category == category {
				out = append(out, issue)
			}
		}
	}
	return out
}
