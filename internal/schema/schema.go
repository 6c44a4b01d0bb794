// Package schema holds the declarative description of the quiz creation form
// and the rule engine that turns a set of values into field errors.
package schema

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"quiz-form/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed quiz_form.yaml
var defaultDocument []byte

// Control is the kind of input rendered for a field.
type Control string

const (
	ControlText   Control = "text"
	ControlSelect Control = "select"
	ControlNumber Control = "number"
	ControlDate   Control = "date"
)

// Rule is a single validator tag and the message shown when it fails.
type Rule struct {
	Tag     string `yaml:"tag" json:"tag"`
	Message string `yaml:"message" json:"message"`
}

// Required reports whether the rule demands a non-blank value.
func (r Rule) Required() bool {
	return strings.TrimSpace(r.Tag) == "required"
}

// Field describes one control of the form.
type Field struct {
	Name        domain.FieldName `yaml:"name" json:"name"`
	Label       string           `yaml:"label" json:"label"`
	Control     Control          `yaml:"control" json:"control"`
	Placeholder string           `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Row         int              `yaml:"row" json:"row"`
	Options     []string         `yaml:"options,omitempty" json:"options,omitempty"`
	Rules       []Rule           `yaml:"rules" json:"rules"`
}

// Required reports whether any rule of the field is "required".
func (f Field) Required() bool {
	for _, r := range f.Rules {
		if r.Required() {
			return true
		}
	}
	return false
}

// Schema is the whole form description.
type Schema struct {
	Name        string  `yaml:"name" json:"name"`
	Title       string  `yaml:"title" json:"title"`
	SubmitLabel string  `yaml:"submit_label" json:"submit_label"`
	Fields      []Field `yaml:"fields" json:"fields"`
}

// Default returns the built-in quiz form schema.
func Default() (*Schema, error) {
	return Parse(defaultDocument)
}

// MustDefault is Default for package initialisation and tests.
func MustDefault() *Schema {
	s, err := Default()
	if err != nil {
		panic(err)
	}
	return s
}

// LoadFile reads a schema document from disk. An empty path yields the default.
func LoadFile(path string) (*Schema, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes and checks a YAML schema document.
func Parse(raw []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}
	if err := s.check(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Field returns the description of name.
func (s *Schema) Field(name domain.FieldName) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Rows groups fields by their layout row, preserving declaration order.
func (s *Schema) Rows() [][]Field {
	var rows [][]Field
	index := map[int]int{}
	for _, f := range s.Fields {
		i, ok := index[f.Row]
		if !ok {
			i = len(rows)
			index[f.Row] = i
			rows = append(rows, nil)
		}
		rows[i] = append(rows[i], f)
	}
	return rows
}

// Marshal encodes the schema back to YAML.
func (s *Schema) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s *Schema) check() error {
	seen := make(map[domain.FieldName]bool, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Name.Valid() {
			return fmt.Errorf("schema: unknown field %q", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema: field %q declared twice", f.Name)
		}
		seen[f.Name] = true

		switch f.Control {
		case ControlText, ControlNumber, ControlDate:
		case ControlSelect:
			if len(f.Options) == 0 {
				return fmt.Errorf("schema: select field %q has no options", f.Name)
			}
		default:
			return fmt.Errorf("schema: field %q has unsupported control %q", f.Name, f.Control)
		}

		for _, r := range f.Rules {
			if strings.TrimSpace(r.Message) == "" {
				return fmt.Errorf("schema: rule %q of field %q has no message", r.Tag, f.Name)
			}
			if err := checkTag(r.Tag); err != nil {
				return fmt.Errorf("schema: field %q: %w", f.Name, err)
			}
		}
	}
	for _, name := range domain.Fields {
		if !seen[name] {
			return fmt.Errorf("schema: field %q is missing", name)
		}
	}
	return nil
}
