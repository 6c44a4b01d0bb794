package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quiz-form/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestValidate_ValidYAML(t *testing.T) {
	path := writeFile(t, "quiz.yaml", `
quizTitle: Go Basics
branch: Computer Science
sem: "3"
section: A
attempts: "2"
marks: "50"
duration: "30"
startDate: "2024-05-01"
endDate: "2024-05-02"
`)
	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "All fields are valid.\n", out)
}

func TestValidate_InvalidJSON(t *testing.T) {
	path := writeFile(t, "quiz.json", `{"quizTitle":"A title that is too long","section":"AB","sem":"x"}`)

	out, err := execute(t, "validate", path)
	assert.ErrorIs(t, err, errInvalidValues)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "quizTitle: Must be 15 characters or less", lines[0])
	assert.Equal(t, "branch: Please select branch.", lines[1])
	assert.Equal(t, "sem: Sem must be number", lines[2])
	assert.Equal(t, "section: Must be one letter", lines[3])
}

func TestValidate_JSONNumbers(t *testing.T) {
	path := writeFile(t, "quiz.json", `{
  "quizTitle": "Go Basics",
  "branch": "Computer Science",
  "sem": 5,
  "section": "A",
  "attempts": 2,
  "marks": 12.5,
  "duration": 30,
  "startDate": "2024-05-01",
  "endDate": "01/15/2024"
}`)
	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "All fields are valid.\n", out)

	values, err := readValues(path)
	require.NoError(t, err)
	assert.Equal(t, "5", values.Sem)
	assert.Equal(t, "12.5", values.Marks)
}

func TestValidate_JSONRejectsNestedValues(t *testing.T) {
	_, err := execute(t, "validate", writeFile(t, "quiz.json", `{"sem":[5]}`))
	assert.ErrorContains(t, err, "must be a scalar")
	assert.NotErrorIs(t, err, errInvalidValues)
}

func TestValidate_JSONOutput(t *testing.T) {
	path := writeFile(t, "quiz.json", `{"quizTitle":"Go Basics"}`)

	out, err := execute(t, "validate", "-o", "json", path)
	assert.ErrorIs(t, err, errInvalidValues)

	var report struct {
		Valid  bool `json:"valid"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Valid)
	assert.Len(t, report.Errors, 8)
}

func TestValidate_RejectsUnknownKeysAndExtensions(t *testing.T) {
	_, err := execute(t, "validate", writeFile(t, "quiz.json", `{"instructor":"x"}`))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errInvalidValues)

	_, err = execute(t, "validate", writeFile(t, "quiz.txt", "quizTitle=x"))
	assert.ErrorContains(t, err, "unsupported values file")
}

func TestSchema_PrintsYAML(t *testing.T) {
	out, err := execute(t, "schema")
	require.NoError(t, err)

	var doc struct {
		Title  string `yaml:"title"`
		Fields []struct {
			Name string `yaml:"name"`
		} `yaml:"fields"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Create Quiz", doc.Title)
	assert.Len(t, doc.Fields, 9)
}

type scriptedDriver struct {
	inputs  map[string]string
	selects map[string]int
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	return d.inputs[cfg.Message], nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	return d.selects[cfg.Message], nil
}

func (d *scriptedDriver) Info(context.Context, string) error { return nil }

func TestFill_PrintsPayload(t *testing.T) {
	original := newDriver
	t.Cleanup(func() { newDriver = original })
	newDriver = func() prompt.Driver {
		return &scriptedDriver{
			inputs: map[string]string{
				"Quiz Title:": "Go Basics",
				"Marks:":      "50",
				"Attempts:":   "2",
				"Duration:":   "30",
				"Start Date:": "2024-05-01",
				"End Date:":   "2024-05-02",
			},
			selects: map[string]int{"Branch:": 0, "Semester:": 0, "Section:": 0},
		}
	}

	out, err := execute(t, "fill", "--delay", "1ms")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Submitting...\n{\n  \"quizTitle\": \"Go Basics\""))
	assert.Contains(t, out, `"sem": "1"`)
	assert.Contains(t, out, `"section": "A"`)
}
