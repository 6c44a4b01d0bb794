package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quiz-form/internal/domain"
	"quiz-form/internal/formstate"
	"quiz-form/internal/schema"
)

// maxRounds bounds how often failing fields are asked again.
const maxRounds = 3

// Fill asks every field of form through driver, field by field in schema
// order, and submits. Text answers are checked by the field rules before the
// prompt accepts them. Fields still failing after submit are asked again.
// The returned values are the accepted submission; the caller completes it.
func Fill(ctx context.Context, driver Driver, form *formstate.Form, validator *schema.Validator) (domain.FormValues, error) {
	fields := form.Schema().Fields
	for _, field := range fields {
		if err := ask(ctx, driver, form, validator, field); err != nil {
			return domain.FormValues{}, err
		}
	}

	for round := 0; ; round++ {
		values, err := form.Submit()
		if err == nil {
			return values, nil
		}
		var failing domain.ValidationErrors
		if !errors.As(err, &failing) || round >= maxRounds {
			return domain.FormValues{}, err
		}
		if err := driver.Info(ctx, describe(failing)); err != nil {
			return domain.FormValues{}, err
		}
		for _, fe := range failing {
			field, ok := form.Schema().Field(domain.FieldName(fe.Field))
			if !ok {
				continue
			}
			if err := ask(ctx, driver, form, validator, field); err != nil {
				return domain.FormValues{}, err
			}
		}
	}
}

func ask(ctx context.Context, driver Driver, form *formstate.Form, validator *schema.Validator, field schema.Field) error {
	current := form.Values().Get(field.Name)

	var value string
	if field.Control == schema.ControlSelect && len(field.Options) > 0 {
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      label(field),
			Options:      field.Options,
			DefaultIndex: indexOf(field.Options, current),
			Help:         field.Placeholder,
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(field.Options) {
			value = field.Options[idx]
		}
	} else {
		answer, err := driver.Input(ctx, InputConfig{
			Message:   label(field),
			Default:   current,
			Help:      field.Placeholder,
			Validator: validator.Check(field.Name),
		})
		if err != nil {
			return err
		}
		value = answer
	}

	if err := form.HandleChange(field.Name, value); err != nil {
		return err
	}
	return form.HandleBlur(field.Name)
}

func label(field schema.Field) string {
	l := strings.TrimSpace(field.Label)
	if l == "" {
		return string(field.Name)
	}
	return l
}

func describe(errs domain.ValidationErrors) string {
	var b strings.Builder
	b.WriteString("Please fix the following fields:")
	for _, e := range errs {
		fmt.Fprintf(&b, "\n  %s: %s", e.Field, e.Message)
	}
	return b.String()
}
