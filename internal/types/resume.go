// Package types provides type definitions for structured data used throughout the resume-ats system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the canonical résumé shape every evaluator consumes.
// It is produced once per request by parsing.NormalizeResume; list fields
// are never nil after normalization.
type ResumeRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Degree            string  `json:"degree"`
	University        string  `json:"university"`
	CGPA              float64 `json:"cgpa"`
	MastersDegree     string  `json:"mastersDegree,omitempty"`
	MastersUniversity string  `json:"mastersUniversity,omitempty"`
	MastersCGPA       float64 `json:"mastersCGPA,omitempty"`

	TenthPercentage   float64 `json:"tenthPercentage"`
	TwelfthPercentage float64 `json:"twelfthPercentage"`

	Skills       []string `json:"skills"`
	Projects     []string `json:"projects"`
	Internships  []string `json:"internships"`
	Experience   []string `json:"experience"`
	Achievements []string `json:"achievements"`

	JobDescription string `json:"job_description,omitempty"`
}

// HasDegree reports whether any degree field is populated.
func (r *ResumeRecord) HasDegree() bool {
	return r.Degree != "" || r.MastersDegree != ""
}

// HasUniversity reports whether any university field is populated.
func (r *ResumeRecord) HasUniversity() bool {
	return r.University != "" || r.MastersUniversity != ""
}

// EffectiveCGPA returns the bachelor CGPA, falling back to the masters CGPA.
func (r *ResumeRecord) EffectiveCGPA() float64 {
	if r.CGPA > 0 {
		return r.CGPA
	}
	return r.MastersCGPA
}

// TextFields returns the free-text fields in scoring order:
// name, degree, university, skills, projects, internships, achievements.
func (r *ResumeRecord) TextFields() []string {
	fields := make([]string, 0, 3+len(r.Skills)+len(r.Projects)+len(r.Internships)+len(r.Achievements))
	fields = append(fields, r.Name, r.Degree, r.University)
	fields = append(fields, r.Skills...)
	fields = append(fields, r.Projects...)
	fields = append(fields, r.Internships...)
	fields = append(fields, r.Achievements...)
	return fields
}
