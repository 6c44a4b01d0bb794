package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz-form/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchema(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "quiz", s.Name)
	assert.Len(t, s.Fields, len(domain.Fields))
	for _, name := range domain.Fields {
		f, ok := s.Field(name)
		require.True(t, ok, "field %s missing", name)
		assert.True(t, f.Required(), "field %s should be required", name)
	}

	sem, _ := s.Field(domain.FieldSem)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7", "8"}, sem.Options)
	section, _ := s.Field(domain.FieldSection)
	assert.Equal(t, []string{"A", "B"}, section.Options)
}

func TestSchema_Rows(t *testing.T) {
	rows := MustDefault().Rows()

	var got [][]domain.FieldName
	for _, row := range rows {
		var names []domain.FieldName
		for _, f := range row {
			names = append(names, f.Name)
		}
		got = append(got, names)
	}

	want := [][]domain.FieldName{
		{domain.FieldQuizTitle},
		{domain.FieldBranch, domain.FieldSem},
		{domain.FieldSection, domain.FieldMarks, domain.FieldAttempts},
		{domain.FieldDuration, domain.FieldStartDate, domain.FieldEndDate},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Rejects(t *testing.T) {
	base := string(defaultDocument)

	tests := []struct {
		name    string
		doc     string
		errText string
	}{
		{"invalid yaml", "fields: [", "failed to decode schema"},
		{"unknown tag", strings.Replace(base, "tag: max_utf16=15", "tag: shorter_than=15", 1), "invalid rule"},
		{"multi tag rule", strings.Replace(base, "tag: max_utf16=15", "tag: max=15,min=1", 1), "single tag"},
		{"bad tag parameter", strings.Replace(base, "tag: max_utf16=15", "tag: max_utf16=fifteen", 1), "invalid rule"},
		{"missing message", strings.Replace(base, "message: Must be 15 characters or less", "message: \"\"", 1), "has no message"},
		{"unknown field", strings.Replace(base, "name: quizTitle", "name: quizName", 1), "unknown field"},
		{"duplicate field", strings.Replace(base, "name: endDate", "name: startDate", 1), "declared twice"},
		{"bad control", strings.Replace(base, "control: date", "control: calendar", 1), "unsupported control"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadFile(t *testing.T) {
	s, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "Create Quiz", s.Title)

	custom := strings.Replace(string(defaultDocument), "title: Create Quiz", "title: New Test", 1)
	path := filepath.Join(t.TempDir(), "form.yaml")
	require.NoError(t, os.WriteFile(path, []byte(custom), 0o600))

	s, err = LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "New Test", s.Title)

	_, err = LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestSchema_MarshalRoundTrip(t *testing.T) {
	s := MustDefault()
	raw, err := s.Marshal()
	require.NoError(t, err)

	again, err := Parse(raw)
	require.NoError(t, err)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("schema changed after marshal (-want +got):\n%s", diff)
	}
}
