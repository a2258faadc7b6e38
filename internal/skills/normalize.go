// Package skills builds the canonical skill allowlist and provides the one
// normalization and matching routine every scoring component shares.
package skills

import (
	"strings"
)

// protectedTokens keep their '+' and '.' characters through normalization.
var protectedTokens = map[string]bool{
	"c++":     true,
	"c#":      true,
	"f#":      true,
	".net":    true,
	"asp.net": true,
}

// skillAliases maps common skill name variants (after punctuation stripping)
// to canonical names. No value may also be a key.
var skillAliases = map[string]string{
	"node js":      "node",
	"nodejs":       "node",
	"react js":     "react",
	"reactjs":      "react",
	"vue js":       "vue",
	"vuejs":        "vue",
	"next js":      "nextjs",
	"c sharp":      "c#",
	"c plus plus":  "c++",
	"cpp":          "c++",
	"dotnet":       ".net",
	"scikit learn": "sklearn",
	"scikit-learn": "sklearn",
	"ms excel":     "excel",
	"powerbi":      "power bi",
	"postgresql":   "postgres",
	"golang":       "go",
	"k8s":          "kubernetes",
}

var dotPlusReplacer = strings.NewReplacer(".", " ", "+", " ")

// isStripped reports whether r is replaced with a space during normalization.
func isStripped(r rune) bool {
	switch r {
	case '(', ')', '[', ']', '{', '}', ',', ';', ':', '/':
		return true
	}
	return false
}

// NormalizeSkillText lower-cases s, strips brackets and punctuation,
// collapses whitespace and applies the alias table. It is idempotent and is
// the only normalization used when skill strings are compared.
func NormalizeSkillText(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	if lower == "" {
		return ""
	}

	lower = strings.Map(func(r rune) rune {
		if isStripped(r) {
			return ' '
		}
		return r
	}, lower)

	fields := strings.Fields(lower)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimRight(field, "."); protectedTokens[trimmed] {
			parts = append(parts, trimmed)
			continue
		}
		field = dotPlusReplacer.Replace(field)
		parts = append(parts, strings.Fields(field)...)
	}

	normalized := strings.Join(parts, " ")
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}
