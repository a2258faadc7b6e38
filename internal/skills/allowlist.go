package skills

import (
	"sort"
	"sync"
)

// curatedTechnical and curatedSoft are the hand-picked allowlist entries
// merged with every catalog skill.
var curatedTechnical = []string{
	"python", "java", "javascript", "typescript", "react", "angular", "vue", "node.js", "node", "express", "django", "flask",
	"spring", "spring boot", "c", "c++", "c#", ".net", "php", "ruby", "go", "rust", "kotlin", "swift",
	"sql", "mysql", "postgresql", "postgres", "mongodb", "redis", "graphql", "rest", "api",
	"docker", "kubernetes", "aws", "azure", "gcp", "git", "github", "gitlab", "linux", "windows", "bash", "powershell",
	"html", "css", "sass", "tailwind", "bootstrap", "jquery",
	"pandas", "numpy", "scikit-learn", "sklearn", "tensorflow", "pytorch", "nlp", "opencv", "computer vision",
	"power bi", "tableau", "excel",
}

var curatedSoft = []string{
	"leadership", "teamwork", "communication", "problem solving", "critical thinking", "time management",
	"project management", "collaboration", "adaptability", "creativity", "analytical",
}

// AllowedSet is the immutable, normalized set of recognized skills.
// It is safe for concurrent use.
type AllowedSet struct {
	entries map[string]struct{}
	sorted  []string
	chars   map[string][]string
}

// NewAllowedSet builds the allowlist from the curated lists plus every skill in catalog.
// A nil catalog contributes nothing.
func NewAllowedSet(catalog *Catalog) *AllowedSet {
	raw := make([]string, 0, len(curatedTechnical)+len(curatedSoft)+64)
	raw = append(raw, curatedTechnical...)
	raw = append(raw, curatedSoft...)
	if catalog != nil {
		raw = append(raw, catalog.AllSkills()...)
	}
	return newAllowedSetFrom(raw)
}

func newAllowedSetFrom(raw []string) *AllowedSet {
	a := &AllowedSet{
		entries: make(map[string]struct{}, len(raw)),
		chars:   make(map[string][]string, len(raw)),
	}
	for _, s := range raw {
		norm := NormalizeSkillText(s)
		if norm == "" {
			continue
		}
		if _, ok := a.entries[norm]; ok {
			continue
		}
		a.entries[norm] = struct{}{}
		a.sorted = append(a.sorted, norm)
		a.chars[norm] = splitChars(norm)
	}
	sort.Strings(a.sorted)
	return a
}

var defaultAllowedSet = sync.OnceValues(func() (*AllowedSet, error) {
	catalog, err := EmbeddedCatalog()
	if err != nil {
		return nil, err
	}
	return NewAllowedSet(catalog), nil
})

// Default returns the process-wide allowlist built from the embedded catalog.
// It is constructed on first use and shared afterwards.
func Default() (*AllowedSet, error) {
	return defaultAllowedSet()
}

// Contains reports whether the already-normalized string is an allowlist entry.
func (a *AllowedSet) Contains(normalized string) bool {
	_, ok := a.entries[normalized]
	return ok
}

// Len returns the number of entries.
func (a *AllowedSet) Len() int {
	return len(a.entries)
}

// Entries returns a sorted copy of all entries.
func (a *AllowedSet) Entries() []string {
	out := make([]string, len(a.sorted))
	copy(out, a.sorted)
	return out
}

// Intersect returns the members of tokens that are allowlist entries, sorted.
// Tokens must already be normalized.
func (a *AllowedSet) Intersect(tokens map[string]struct{}) []string {
	var out []string
	for t := range tokens {
		if a.Contains(t) {
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
