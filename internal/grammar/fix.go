package grammar

import (
	"fmt"

	"github.com/jonathan/resume-ats/internal/types"
)

// CorrectionSuggestions turns a résumé check into user-facing fixes:
// spelling first, then professional terms, then grammar review hints.
func CorrectionSuggestions(res types.GrammarCheckResult) []types.CorrectionSuggestion {
	out := make([]types.CorrectionSuggestion, 0, res.TotalErrors)
	for _, e := range res.SpellingErrors {
		out = append(out, types.CorrectionSuggestion{
			Type:       types.CorrectionSpelling,
			Section:    e.Source,
			Original:   e.Word,
			Correction: e.Correction,
			Context:    e.Context,
			Severity:   e.Severity,
			Suggestion: fmt.Sprintf("Change '%s' to '%s'", e.Word, e.Correction),
		})
	}
	for _, e := range res.ProfessionalErrors {
		out = append(out, types.CorrectionSuggestion{
			Type:       types.CorrectionProfessional,
			Section:    e.Source,
			Original:   e.Term,
			Correction: e.Correction,
			Context:    e.Context,
			Severity:   e.Severity,
			Suggestion: fmt.Sprintf("Use '%s' instead of '%s'", e.Correction, e.Term),
		})
	}
	for _, e := range res.GrammarErrors {
		out = append(out, types.CorrectionSuggestion{
			Type:       types.CorrectionGrammar,
			Section:    e.Source,
			Original:   e.Text,
			Correction: "Review grammar",
			Context:    e.Context,
			Severity:   e.Severity,
			Suggestion: "Review: " + e.Issue,
		})
	}
	return out
}

// ApplyCorrections rewrites every whole-word, case-insensitive occurrence of a
// spelling or professional correction. Grammar hits need a human and are left alone.
func ApplyCorrections(text string, corrections []types.Correction) string {
	for _, c := range corrections {
		if c.Type != types.CorrectionSpelling && c.Type != types.CorrectionProfessional {
			continue
		}
		text = wordPattern(c.Original).ReplaceAllLiteralString(text, c.Corrected)
	}
	return text
}

// FixSections applies each section's own corrections to its text and returns
// only the sections that changed, keyed by section name.
func FixSections(r types.ResumeRecord) map[string]string {
	res := CheckResume(r)
	fixed := map[string]string{}
	for _, sec := range Sections(r) {
		secRes, ok := res.BySection[sec.Name]
		if !ok || len(secRes.Corrections) == 0 {
			continue
		}
		if out := ApplyCorrections(sec.Text, secRes.Corrections); out != sec.Text {
			fixed[sec.Name] = out
		}
	}
	return fixed
}
