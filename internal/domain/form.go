package domain

import (
	"fmt"
	"strings"
)

// FieldName identifies one control of the quiz creation form.
type FieldName string

const (
	FieldQuizTitle FieldName = "quizTitle"
	FieldBranch    FieldName = "branch"
	FieldSem       FieldName = "sem"
	FieldSection   FieldName = "section"
	FieldAttempts  FieldName = "attempts"
	FieldMarks     FieldName = "marks"
	FieldDuration  FieldName = "duration"
	FieldStartDate FieldName = "startDate"
	FieldEndDate   FieldName = "endDate"
)

// Fields is the fixed field enumeration in display order.
var Fields = []FieldName{
	FieldQuizTitle,
	FieldBranch,
	FieldSem,
	FieldSection,
	FieldAttempts,
	FieldMarks,
	FieldDuration,
	FieldStartDate,
	FieldEndDate,
}

// ParseFieldName resolves a raw field identifier against the enumeration.
func ParseFieldName(raw string) (FieldName, error) {
	name := FieldName(strings.TrimSpace(raw))
	if !name.Valid() {
		return "", NewUnknownFieldError(raw)
	}
	return name, nil
}

// Valid reports whether the name belongs to the enumeration.
func (f FieldName) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

func (f FieldName) String() string {
	return string(f)
}

// FormValues holds the raw input of every field. Numbers and dates are kept
// as typed by the user; the schema decides whether they parse.
type FormValues struct {
	QuizTitle string `json:"quizTitle" yaml:"quizTitle"`
	Branch    string `json:"branch" yaml:"branch"`
	Sem       string `json:"sem" yaml:"sem"`
	Section   string `json:"section" yaml:"section"`
	Attempts  string `json:"attempts" yaml:"attempts"`
	Marks     string `json:"marks" yaml:"marks"`
	Duration  string `json:"duration" yaml:"duration"`
	StartDate string `json:"startDate" yaml:"startDate"`
	EndDate   string `json:"endDate" yaml:"endDate"`
}

// Get returns the value stored for field.
func (v FormValues) Get(field FieldName) string {
	switch field {
	case FieldQuizTitle:
		return v.QuizTitle
	case FieldBranch:
		return v.Branch
	case FieldSem:
		return v.Sem
	case FieldSection:
		return v.Section
	case FieldAttempts:
		return v.Attempts
	case FieldMarks:
		return v.Marks
	case FieldDuration:
		return v.Duration
	case FieldStartDate:
		return v.StartDate
	case FieldEndDate:
		return v.EndDate
	}
	return ""
}

// Set stores value for field. Unknown fields are rejected.
func (v *FormValues) Set(field FieldName, value string) error {
	switch field {
	case FieldQuizTitle:
		v.QuizTitle = value
	case FieldBranch:
		v.Branch = value
	case FieldSem:
		v.Sem = value
	case FieldSection:
		v.Section = value
	case FieldAttempts:
		v.Attempts = value
	case FieldMarks:
		v.Marks = value
	case FieldDuration:
		v.Duration = value
	case FieldStartDate:
		v.StartDate = value
	case FieldEndDate:
		v.EndDate = value
	default:
		return NewUnknownFieldError(string(field))
	}
	return nil
}

// Map flattens the values into a field keyed map.
func (v FormValues) Map() map[FieldName]string {
	out := make(map[FieldName]string, len(Fields))
	for _, field := range Fields {
		out[field] = v.Get(field)
	}
	return out
}

// FieldErrors maps a failing field to its message. Passing fields are absent.
type FieldErrors map[FieldName]string

// Has reports whether field currently fails its rule.
func (e FieldErrors) Has(field FieldName) bool {
	_, ok := e[field]
	return ok
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Ordered returns the errors following the field enumeration.
func (e FieldErrors) Ordered() ValidationErrors {
	var out ValidationErrors
	for _, field := range Fields {
		if msg, ok := e[field]; ok {
			out = append(out, ValidationError{Field: string(field), Message: msg})
		}
	}
	return out
}

// FieldFlags records a per-field boolean such as touched or dirty.
type FieldFlags map[FieldName]bool

// Mark sets the flag for field. Flags are never cleared except by reset.
func (f FieldFlags) Mark(field FieldName) {
	f[field] = true
}

// Clone returns an independent copy.
func (f FieldFlags) Clone() FieldFlags {
	out := make(FieldFlags, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// DisplayMode controls which validation errors the form shows.
type DisplayMode string

const (
	// DisplayTouched shows errors for fields the user has left at least once.
	DisplayTouched DisplayMode = "touched"
	// DisplayAll shows every failing field.
	DisplayAll DisplayMode = "all"
)

// ParseDisplayMode resolves a configured display mode, defaulting to touched.
func ParseDisplayMode(raw string) (DisplayMode, error) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DisplayTouched:
		return DisplayTouched, nil
	case DisplayAll:
		return DisplayAll, nil
	}
	return "", fmt.Errorf("unsupported error display mode %q", raw)
}
