package formstate

import (
	"errors"
	"strings"
	"testing"

	"quiz-form/internal/domain"
	"quiz-form/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForm(opts ...Option) *Form {
	return New(schema.NewValidator(schema.MustDefault()), opts...)
}

func fill(t *testing.T, f *Form) {
	t.Helper()
	values := map[domain.FieldName]string{
		domain.FieldQuizTitle: "Go Basics",
		domain.FieldBranch:    "Computer Science",
		domain.FieldSem:       "5",
		domain.FieldSection:   "B",
		domain.FieldAttempts:  "1",
		domain.FieldMarks:     "100",
		domain.FieldDuration:  "45",
		domain.FieldStartDate: "2026-11-01",
		domain.FieldEndDate:   "2026-11-08",
	}
	for field, value := range values {
		require.NoError(t, f.HandleChange(field, value))
		require.NoError(t, f.HandleBlur(field))
	}
}

func TestNew_StartsBlank(t *testing.T) {
	f := newForm()

	assert.Equal(t, domain.FormValues{}, f.Values())
	assert.Len(t, f.Errors(), len(domain.Fields), "blank values fail every required rule")
	assert.Empty(t, f.VisibleErrors(), "nothing touched yet")
	assert.False(t, f.IsDirty())
	assert.False(t, f.IsSubmitting())
}

func TestTouchedBlankFieldShowsRequiredMessage(t *testing.T) {
	for _, field := range domain.Fields {
		t.Run(string(field), func(t *testing.T) {
			f := newForm()
			require.NoError(t, f.HandleBlur(field))

			msg, ok := f.ErrorFor(field)
			require.True(t, ok)
			assert.True(t, strings.HasPrefix(msg, "Please "), "got %q", msg)
			assert.Len(t, f.VisibleErrors(), 1)
		})
	}
}

func TestLongTitleErrorsRegardlessOfTouched(t *testing.T) {
	f := newForm()
	require.NoError(t, f.HandleChange(domain.FieldQuizTitle, "A very long quiz title"))

	assert.Equal(t, "Must be 15 characters or less", f.Errors()[domain.FieldQuizTitle])
	assert.False(t, f.IsTouched(domain.FieldQuizTitle))
	assert.False(t, f.IsValid())
}

func TestSectionMustBeSingleCharacter(t *testing.T) {
	f := newForm()
	for _, value := range []string{"AB", "Section", "  "} {
		require.NoError(t, f.HandleChange(domain.FieldSection, value))
		assert.Equal(t, "Must be one letter", f.Errors()[domain.FieldSection], "value %q", value)
	}
	require.NoError(t, f.HandleChange(domain.FieldSection, "A"))
	assert.NotContains(t, f.Errors(), domain.FieldSection)
}

func TestTouchedThenValidValueClearsError(t *testing.T) {
	f := newForm()
	require.NoError(t, f.HandleBlur(domain.FieldMarks))
	_, shown := f.ErrorFor(domain.FieldMarks)
	require.True(t, shown)

	require.NoError(t, f.HandleChange(domain.FieldMarks, "40"))
	_, shown = f.ErrorFor(domain.FieldMarks)
	assert.False(t, shown)

	// Further unrelated events do not bring it back.
	require.NoError(t, f.HandleBlur(domain.FieldMarks))
	require.NoError(t, f.HandleChange(domain.FieldSem, "2"))
	f.Validate()
	_, shown = f.ErrorFor(domain.FieldMarks)
	assert.False(t, shown)
}

func TestTouchedIsMonotonicUntilReset(t *testing.T) {
	f := newForm()
	require.NoError(t, f.HandleBlur(domain.FieldBranch))
	require.NoError(t, f.HandleChange(domain.FieldBranch, "Computer Science"))
	require.NoError(t, f.HandleChange(domain.FieldBranch, ""))
	assert.True(t, f.IsTouched(domain.FieldBranch))

	f.Reset()
	assert.False(t, f.IsTouched(domain.FieldBranch))
	assert.Equal(t, domain.FormValues{}, f.Values())
	assert.False(t, f.IsDirty())
}

func TestDisplayAllShowsUntouchedErrors(t *testing.T) {
	f := newForm(WithDisplayMode(domain.DisplayAll))
	assert.Len(t, f.VisibleErrors(), len(domain.Fields))

	msg, ok := f.ErrorFor(domain.FieldEndDate)
	assert.True(t, ok)
	assert.Equal(t, "Please enter end date", msg)
}

func TestHandleChange_UnknownField(t *testing.T) {
	f := newForm()
	err := f.HandleChange("difficulty", "hard")
	assert.True(t, domain.HasCode(err, domain.CodeUnknownField))
	assert.True(t, domain.HasCode(f.HandleBlur("difficulty"), domain.CodeUnknownField))
}

func TestHandleChange_SanitizesAndTracksDirty(t *testing.T) {
	f := newForm()
	require.NoError(t, f.HandleChange(domain.FieldQuizTitle, "<i>Loops</i>"))
	assert.Equal(t, "Loops", f.Values().QuizTitle)
	assert.True(t, f.State().Dirty[domain.FieldQuizTitle])
	assert.False(t, f.State().Dirty[domain.FieldSem])

	g := newForm(WithSanitizer(strings.ToUpper))
	require.NoError(t, g.HandleChange(domain.FieldSection, "b"))
	assert.Equal(t, "B", g.Values().Section)
}

func TestSubmit_BlockedTouchesEverything(t *testing.T) {
	f := newForm()
	require.NoError(t, f.HandleChange(domain.FieldQuizTitle, "Arrays"))

	_, err := f.Submit()
	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, len(domain.Fields)-1)
	assert.Equal(t, "branch", verrs[0].Field)

	for _, field := range domain.Fields {
		assert.True(t, f.IsTouched(field), "field %s", field)
	}
	assert.Len(t, f.VisibleErrors(), len(domain.Fields)-1)
	assert.False(t, f.IsSubmitting())
	assert.Equal(t, 1, f.State().SubmitCount)
}

func TestSubmit_ValidEntersSubmitting(t *testing.T) {
	f := newForm()
	fill(t, f)

	values, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, f.Values(), values)
	assert.True(t, f.IsSubmitting())

	_, err = f.Submit()
	assert.True(t, domain.HasCode(err, domain.CodeSubmitInProgress))

	f.CompleteSubmit()
	assert.False(t, f.IsSubmitting())
}

func TestRestore_RecomputesErrors(t *testing.T) {
	v := schema.NewValidator(schema.MustDefault())
	stale := domain.FormState{
		Values: domain.FormValues{QuizTitle: "Pointers"},
		Errors: domain.FieldErrors{domain.FieldQuizTitle: "stale"},
	}

	f := Restore(v, stale, WithDisplayMode(domain.DisplayAll))
	assert.NotContains(t, f.Errors(), domain.FieldQuizTitle)
	assert.Equal(t, domain.DisplayAll, f.Mode())
	require.NoError(t, f.HandleBlur(domain.FieldSem), "nil flag maps are replaced")
}

func TestWithInitialValues(t *testing.T) {
	seed := domain.FormValues{Branch: "Computer Science"}
	f := newForm(WithInitialValues(seed))
	require.NoError(t, f.HandleChange(domain.FieldBranch, ""))
	f.Reset()
	assert.Equal(t, seed, f.Values())
}
