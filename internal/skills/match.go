package skills

import (
	"github.com/pmezard/go-difflib/difflib"
)

// FuzzyCutoff is the minimum similarity ratio for a fuzzy allowlist match.
const FuzzyCutoff = 0.85

// Match resolves a declared skill to its allowlist entry. It normalizes the
// candidate, tries an exact lookup, then falls back to the closest entry whose
// similarity ratio is at least FuzzyCutoff. Ties go to the lexically larger entry.
func (a *AllowedSet) Match(candidate string) (string, bool) {
	norm := NormalizeSkillText(candidate)
	if norm == "" {
		return "", false
	}
	if a.Contains(norm) {
		return norm, true
	}
	return a.closest(norm)
}

func (a *AllowedSet) closest(norm string) (string, bool) {
	word := splitChars(norm)
	matcher := difflib.NewMatcher(nil, word)

	best := ""
	bestScore := 0.0
	for _, entry := range a.sorted {
		matcher.SetSeq1(a.chars[entry])
		if matcher.RealQuickRatio() < FuzzyCutoff || matcher.QuickRatio() < FuzzyCutoff {
			continue
		}
		score := matcher.Ratio()
		if score < FuzzyCutoff {
			continue
		}
		// a.sorted is ascending, so >= lets the larger entry win a tie.
		if score >= bestScore {
			best = entry
			bestScore = score
		}
	}
	return best, best != ""
}

// Similarity returns the difflib ratio between two strings.
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(splitChars(a), splitChars(b)).Ratio()
}

func splitChars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Recognize resolves every declared skill through Match and returns the
// distinct allowlist entries in declaration order.
func (a *AllowedSet) Recognize(declared []string) []string {
	seen := make(map[string]bool, len(declared))
	out := make([]string, 0, len(declared))
	for _, s := range declared {
		entry, ok := a.Match(s)
		if !ok || seen[entry] {
			continue
		}
		seen[entry] = true
		out = append(out, entry)
	}
	return out
}

// CountRecognized returns how many declared skills (duplicates included) resolve
// to an allowlist entry.
func (a *AllowedSet) CountRecognized(declared []string) int {
	n := 0
	for _, s := range declared {
		if _, ok := a.Match(s); ok {
			n++
		}
	}
	return n
}
