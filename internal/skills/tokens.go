package skills

import (
	"regexp"
	"strings"
)

var wordSplitter = regexp.MustCompile(`[^a-z0-9+#.]+`)

// Words lower-cases text and splits it into raw word tokens. '+', '#' and '.'
// stay inside tokens so "c++", "c#" and "node.js" survive.
func Words(text string) []string {
	parts := wordSplitter.Split(strings.ToLower(text), -1)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TokenSet returns the normalized unigrams and adjacent-word bigrams of text.
func TokenSet(text string) map[string]struct{} {
	words := Words(text)
	set := make(map[string]struct{}, 2*len(words))
	for i, w := range words {
		if norm := NormalizeSkillText(w); norm != "" {
			set[norm] = struct{}{}
		}
		if i+1 < len(words) {
			if norm := NormalizeSkillText(w + " " + words[i+1]); norm != "" {
				set[norm] = struct{}{}
			}
		}
	}
	return set
}

// KeywordsIn returns the allowlist entries found in text, sorted.
func (a *AllowedSet) KeywordsIn(text string) []string {
	return a.Intersect(TokenSet(text))
}

// Mentions reports which of the given normalized skills occur in text.
func Mentions(text string, skills []string) []string {
	tokens := TokenSet(text)
	var out []string
	for _, s := range skills {
		if _, ok := tokens[s]; ok {
			out = append(out, s)
		}
	}
	return out
}
