// Package parsing converts loosely-typed résumé JSON into the canonical ResumeRecord.
package parsing

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-ats/internal/types"
	"github.com/mitchellh/mapstructure"
)

// listDelimiters splits a single string that stands in for a list.
var listDelimiters = regexp.MustCompile(`,|\n|•|;|\|`)

// rawResume mirrors every key the normalizer understands. CGPA fields are kept
// untyped so presence (as opposed to a zero value) can be detected.
type rawResume struct {
	Name   string `mapstructure:"name"`
	Email  string `mapstructure:"email"`
	Phone  string `mapstructure:"phone"`
	Mobile string `mapstructure:"mobile"`

	Degree             string `mapstructure:"degree"`
	BachelorDegree     string `mapstructure:"bachelorDegree"`
	MastersDegree      string `mapstructure:"mastersDegree"`
	University         string `mapstructure:"university"`
	BachelorUniversity string `mapstructure:"bachelorUniversity"`
	MastersUniversity  string `mapstructure:"mastersUniversity"`

	CGPA         any `mapstructure:"cgpa"`
	BachelorCGPA any `mapstructure:"bachelorCGPA"`
	CollegeCGPA  any `mapstructure:"collegeCGPA"`
	MastersCGPA  any `mapstructure:"mastersCGPA"`

	TenthPercentage   float64 `mapstructure:"tenthPercentage"`
	TwelfthPercentage float64 `mapstructure:"twelfthPercentage"`

	Skills       []string `mapstructure:"skills"`
	Projects     []string `mapstructure:"projects"`
	Internships  []string `mapstructure:"internships"`
	Experience   []string `mapstructure:"experience"`
	Achievements []string `mapstructure:"achievements"`

	JobDescription    string `mapstructure:"job_description"`
	JobDescriptionAlt string `mapstructure:"jobDescription"`
}

// NormalizeResume maps a raw résumé object onto types.ResumeRecord. It never
// fails: anything it cannot interpret falls back to the field's zero value.
//
// Coercion table:
//
//	name, email                  string                       → trimmed string
//	phone                        phone | mobile               → trimmed string
//	degree                       degree | bachelorDegree      → trimmed string
//	university                   university | bachelorUniversity
//	cgpa                         first present of bachelorCGPA, cgpa, collegeCGPA;
//	                             number or numeric string     → float64 (else 0)
//	mastersDegree/University     string                       → trimmed string
//	mastersCGPA                  number or numeric string     → float64 (else 0)
//	tenth/twelfthPercentage      number or numeric string     → float64 (else 0)
//	skills, projects,            list of strings/objects, or one string split on
//	internships, experience,     , newline • ; |              → []string, trimmed,
//	achievements                                                empties dropped
//	project objects              {title, description}         → "title: description"
//	job_description              job_description | jobDescription → trimmed string
//
// Scalars of the wrong kind (a number where a string belongs, an object where
// a list belongs) coerce to their string form or to empty.
func NormalizeResume(raw map[string]any) types.ResumeRecord {
	var r rawResume
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(coercionHook),
		Result:     &r,
	})
	if err == nil {
		// The hook is total, so a residual error only leaves a field at its zero value.
		_ = decoder.Decode(raw)
	}

	return types.ResumeRecord{
		Name:              r.Name,
		Email:             r.Email,
		Phone:             firstNonEmpty(r.Phone, r.Mobile),
		Degree:            firstNonEmpty(r.Degree, r.BachelorDegree),
		University:        firstNonEmpty(r.University, r.BachelorUniversity),
		CGPA:              toFloat(firstPresent(r.BachelorCGPA, r.CGPA, r.CollegeCGPA)),
		MastersDegree:     r.MastersDegree,
		MastersUniversity: r.MastersUniversity,
		MastersCGPA:       toFloat(r.MastersCGPA),
		TenthPercentage:   r.TenthPercentage,
		TwelfthPercentage: r.TwelfthPercentage,
		Skills:            nonNil(r.Skills),
		Projects:          nonNil(r.Projects),
		Internships:       nonNil(r.Internships),
		Experience:        nonNil(r.Experience),
		Achievements:      nonNil(r.Achievements),
		JobDescription:    firstNonEmpty(r.JobDescription, r.JobDescriptionAlt),
	}
}

// coercionHook rewrites raw JSON values into the shape of the target field.
func coercionHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch {
	case to.Kind() == reflect.String:
		return toText(data), nil
	case to.Kind() == reflect.Float64:
		return toFloat(data), nil
	case to.Kind() == reflect.Slice && to.Elem().Kind() == reflect.String:
		return AsList(data), nil
	}
	return data, nil
}

// AsList coerces a list-like value into trimmed, non-empty strings.
func AsList(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		return splitDelimited(val)
	case []string:
		out := make([]string, 0, len(val))
		for _, s := range val {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := itemText(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return []string{}
}

func splitDelimited(s string) []string {
	parts := listDelimiters.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// itemText renders one list element. Objects with title/description (projects)
// become "title: description"; other objects join their values in key order.
func itemText(item any) string {
	obj, ok := item.(map[string]any)
	if !ok {
		return toText(item)
	}

	title := firstNonEmpty(toText(obj["title"]), toText(obj["name"]))
	desc := toText(obj["description"])
	switch {
	case title != "" && desc != "":
		return title + ": " + desc
	case title != "" || desc != "":
		return title + desc
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, 0, len(keys))
	for _, k := range keys {
		if s := toText(obj[k]); s != "" {
			values = append(values, s)
		}
	}
	return strings.Join(values, " ")
}

func toText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int, int64, int32, bool:
		return fmt.Sprint(val)
	}
	return ""
}

func toFloat(v any) float64 {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPresent(values ...any) any {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
