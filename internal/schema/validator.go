package schema

import (
	"errors"
	"fmt"
	"strings"

	"quiz-form/internal/domain"

	"github.com/go-playground/validator/v10"
)

var tagChecker = newEngine()

// Validator applies the rules of a Schema to form values. Errors are a pure
// function of the values: the same input always yields the same FieldErrors.
type Validator struct {
	schema   *Schema
	validate *validator.Validate
}

// NewValidator builds a rule engine for s.
func NewValidator(s *Schema) *Validator {
	return &Validator{
		schema:   s,
		validate: newEngine(),
	}
}

// Schema returns the form description the validator enforces.
func (v *Validator) Schema() *Schema {
	return v.schema
}

// ValidateField returns the message of the first failing rule of field, or
// ok=true when the value is acceptable. Rules after "required" are not run
// against blank values.
func (v *Validator) ValidateField(field domain.FieldName, value string) (message string, ok bool) {
	f, found := v.schema.Field(field)
	if !found {
		return "", true
	}
	for _, rule := range f.Rules {
		if value == "" && !rule.Required() {
			continue
		}
		if err := v.validate.Var(value, rule.Tag); err != nil {
			return rule.Message, false
		}
	}
	return "", true
}

// Validate evaluates every field independently.
func (v *Validator) Validate(values domain.FormValues) domain.FieldErrors {
	errs := make(domain.FieldErrors)
	for _, field := range domain.Fields {
		if msg, ok := v.ValidateField(field, values.Get(field)); !ok {
			errs[field] = msg
		}
	}
	return errs
}

// Check adapts the rules of field to a prompt-style validator.
func (v *Validator) Check(field domain.FieldName) func(any) error {
	return func(answer any) error {
		value, err := answerString(answer)
		if err != nil {
			return err
		}
		if msg, ok := v.ValidateField(field, value); !ok {
			return errors.New(msg)
		}
		return nil
	}
}

func answerString(answer any) (string, error) {
	switch a := answer.(type) {
	case string:
		return a, nil
	case fmt.Stringer:
		return a.String(), nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("cannot validate answer of type %T", answer)
}

// checkTag rejects tags the validator does not know. validator panics on
// undefined tags, so the check runs under recover.
func checkTag(tag string) (err error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return errors.New("empty rule tag")
	}
	if strings.ContainsAny(trimmed, ",|") {
		return fmt.Errorf("rule %q must hold a single tag", trimmed)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("invalid rule %q: %v", trimmed, r)
		}
	}()
	_ = tagChecker.Var("", trimmed)
	return nil
}
