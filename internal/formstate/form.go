// Package formstate manages the state of one quiz creation form: current
// values, derived validation errors, touched and dirty flags, and the
// submitting flag. A Form is not safe for concurrent use; callers serialise
// events for the same form.
package formstate

import (
	"quiz-form/internal/domain"
	"quiz-form/internal/schema"
)

// Option configures a Form.
type Option func(*Form)

// WithDisplayMode selects which errors VisibleErrors reports.
func WithDisplayMode(mode domain.DisplayMode) Option {
	return func(f *Form) {
		if mode != "" {
			f.mode = mode
		}
	}
}

// WithSanitizer replaces the input cleaner applied on every change.
func WithSanitizer(fn func(string) string) Option {
	return func(f *Form) {
		if fn != nil {
			f.sanitize = fn
		}
	}
}

// WithInitialValues seeds the form and the values Reset returns to.
func WithInitialValues(values domain.FormValues) Option {
	return func(f *Form) {
		f.initial = values
	}
}

// Form is the form-state manager.
type Form struct {
	validator *schema.Validator
	mode      domain.DisplayMode
	sanitize  func(string) string
	initial   domain.FormValues
	state     domain.FormState
}

// New creates a form with blank (or seeded) values and errors computed from them.
func New(v *schema.Validator, opts ...Option) *Form {
	f := &Form{
		validator: v,
		mode:      domain.DisplayTouched,
		sanitize:  schema.SanitizeInput,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.state = f.blankState()
	return f
}

// Restore rebuilds a form from a previously saved state. Errors are
// recomputed from the stored values rather than trusted.
func Restore(v *schema.Validator, state domain.FormState, opts ...Option) *Form {
	f := New(v, opts...)
	f.state = domain.FormState{
		Values:      state.Values,
		Touched:     state.Touched.Clone(),
		Dirty:       state.Dirty.Clone(),
		Submitting:  state.Submitting,
		SubmitCount: state.SubmitCount,
	}
	if f.state.Touched == nil {
		f.state.Touched = domain.FieldFlags{}
	}
	if f.state.Dirty == nil {
		f.state.Dirty = domain.FieldFlags{}
	}
	f.state.Errors = f.validator.Validate(f.state.Values)
	return f
}

func (f *Form) blankState() domain.FormState {
	return domain.FormState{
		Values:  f.initial,
		Errors:  f.validator.Validate(f.initial),
		Touched: domain.FieldFlags{},
		Dirty:   domain.FieldFlags{},
	}
}

// Mode returns the error display mode.
func (f *Form) Mode() domain.DisplayMode {
	return f.mode
}

// Schema returns the form description.
func (f *Form) Schema() *schema.Schema {
	return f.validator.Schema()
}

// Values returns the current values.
func (f *Form) Values() domain.FormValues {
	return f.state.Values
}

// Errors returns every failing field, touched or not.
func (f *Form) Errors() domain.FieldErrors {
	return f.state.Errors.Clone()
}

// IsTouched reports whether field has lost focus at least once.
func (f *Form) IsTouched(field domain.FieldName) bool {
	return f.state.Touched[field]
}

// IsDirty reports whether any change event altered a value.
func (f *Form) IsDirty() bool {
	return len(f.state.Dirty) > 0
}

// IsValid reports whether every rule passes.
func (f *Form) IsValid() bool {
	return len(f.state.Errors) == 0
}

// IsSubmitting reports whether an accepted submit has not completed yet.
func (f *Form) IsSubmitting() bool {
	return f.state.Submitting
}

// State returns a copy of the bookkeeping suitable for storage.
func (f *Form) State() domain.FormState {
	return domain.FormState{
		Values:      f.state.Values,
		Errors:      f.state.Errors.Clone(),
		Touched:     f.state.Touched.Clone(),
		Dirty:       f.state.Dirty.Clone(),
		Submitting:  f.state.Submitting,
		SubmitCount: f.state.SubmitCount,
	}
}

// HandleChange stores a new value for field and recomputes the errors.
func (f *Form) HandleChange(field domain.FieldName, value string) error {
	if !field.Valid() {
		return domain.NewUnknownFieldError(string(field))
	}
	cleaned := f.sanitize(value)
	if f.state.Values.Get(field) != cleaned {
		f.state.Dirty.Mark(field)
	}
	if err := f.state.Values.Set(field, cleaned); err != nil {
		return err
	}
	f.state.Errors = f.validator.Validate(f.state.Values)
	return nil
}

// HandleBlur marks field as touched.
func (f *Form) HandleBlur(field domain.FieldName) error {
	if !field.Valid() {
		return domain.NewUnknownFieldError(string(field))
	}
	f.state.Touched.Mark(field)
	return nil
}

// Validate recomputes the errors from the current values.
func (f *Form) Validate() domain.FieldErrors {
	f.state.Errors = f.validator.Validate(f.state.Values)
	return f.Errors()
}

// VisibleErrors returns the errors the form should display under its mode.
func (f *Form) VisibleErrors() domain.FieldErrors {
	if f.mode == domain.DisplayAll {
		return f.Errors()
	}
	visible := make(domain.FieldErrors)
	for field, msg := range f.state.Errors {
		if f.state.Touched[field] {
			visible[field] = msg
		}
	}
	return visible
}

// ErrorFor returns the displayed error of field, if any.
func (f *Form) ErrorFor(field domain.FieldName) (string, bool) {
	msg, ok := f.state.Errors[field]
	if !ok {
		return "", false
	}
	if f.mode == domain.DisplayAll || f.state.Touched[field] {
		return msg, true
	}
	return "", false
}

// Submit touches every field and validates. A failing rule blocks the
// submission with domain.ValidationErrors. On success the form enters the
// submitting state and the final values are returned; CompleteSubmit ends it.
func (f *Form) Submit() (domain.FormValues, error) {
	if f.state.Submitting {
		return domain.FormValues{}, domain.NewSubmitInProgressError("")
	}
	for _, field := range domain.Fields {
		f.state.Touched.Mark(field)
	}
	f.state.SubmitCount++

	errs := f.Validate()
	if len(errs) > 0 {
		return domain.FormValues{}, errs.Ordered()
	}
	f.state.Submitting = true
	return f.state.Values, nil
}

// CompleteSubmit resets the submitting flag.
func (f *Form) CompleteSubmit() {
	f.state.Submitting = false
}

// Reset restores the initial values and clears touched and dirty flags.
func (f *Form) Reset() {
	f.state = f.blankState()
}
