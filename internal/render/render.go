// Package render turns a form session into the HTML page served at "/".
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"quiz-form/internal/domain"
	"quiz-form/internal/dto"
	"quiz-form/internal/schema"

	"github.com/flosch/pongo2/v6"
)

//go:embed templates/*.html
var templateFiles embed.FS

const formTemplate = "form.html"

// OptionView is one <option> of a select control.
type OptionView struct {
	Value    string
	Selected bool
}

// ControlView is a labelled control with its current value and displayed error.
type ControlView struct {
	Name        string
	Label       string
	LabelClass  string
	ColumnClass string
	Control     string
	InputType   string
	Placeholder string
	Value       string
	Error       string
	Invalid     bool
	Options     []OptionView
}

// RowView groups the controls laid out on one line.
type RowView struct {
	Controls []ControlView
}

// FormView is the data the form template renders.
type FormView struct {
	FormID      string
	Title       string
	SubmitLabel string
	Action      string
	Rows        []RowView
	Submitting  bool
	Alert       string
	Notice      string
	ValuesJSON  string
	ErrorsJSON  string
	TouchedJSON string
	SubmitDelay int64
}

// Renderer executes the embedded pongo2 templates.
type Renderer struct {
	mu   sync.RWMutex
	set  *pongo2.TemplateSet
	form *pongo2.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("render: open templates: %w", err)
	}
	set := pongo2.NewSet("quizform", pongo2.NewFSLoader(sub))
	tmpl, err := set.FromFile(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("render: parse %s: %w", formTemplate, err)
	}
	return &Renderer{set: set, form: tmpl}, nil
}

// RenderForm writes the form page for view to w.
func (r *Renderer) RenderForm(w io.Writer, view FormView) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.form.ExecuteWriter(pongo2.Context{"form": view}, w); err != nil {
		return fmt.Errorf("render: execute %s: %w", formTemplate, err)
	}
	return nil
}

// RenderFormString renders the form page into a string.
func (r *Renderer) RenderFormString(view FormView) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderForm(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// BuildFormView lays the schema out in rows and fills every control from state.
// Only visible errors mark a control invalid, the debug panel shows them all.
func BuildFormView(s *schema.Schema, state *dto.FormStateResponse) (FormView, error) {
	view := FormView{
		FormID:      state.ID,
		Title:       s.Title,
		SubmitLabel: s.SubmitLabel,
		Action:      "/",
		Submitting:  state.IsSubmitting,
	}

	for _, row := range s.Rows() {
		var rv RowView
		for i, field := range row {
			value := state.Values.Get(field.Name)
			msg, visible := state.VisibleErrors[string(field.Name)]
			cv := ControlView{
				Name:        string(field.Name),
				Label:       field.Label,
				LabelClass:  labelClass(i),
				ColumnClass: columnClass(i, len(row), field.Control),
				Control:     string(field.Control),
				InputType:   inputType(field.Control),
				Placeholder: field.Placeholder,
				Value:       value,
				Error:       msg,
				Invalid:     visible,
			}
			for _, opt := range field.Options {
				cv.Options = append(cv.Options, OptionView{Value: opt, Selected: opt == value})
			}
			rv.Controls = append(rv.Controls, cv)
		}
		view.Rows = append(view.Rows, rv)
	}

	var err error
	if view.ValuesJSON, err = indentJSON(state.Values); err != nil {
		return FormView{}, err
	}
	if view.ErrorsJSON, err = indentJSON(orderedMessages(state.Errors)); err != nil {
		return FormView{}, err
	}
	if view.TouchedJSON, err = indentJSON(state.Touched); err != nil {
		return FormView{}, err
	}
	return view, nil
}

func labelClass(index int) string {
	if index == 0 {
		return "col-sm-2 col-form-label"
	}
	return "col-form-label"
}

func columnClass(index, width int, c schema.Control) string {
	switch {
	case width == 1:
		return "col-sm-10"
	case index == 0 && width == 2 && c == schema.ControlSelect:
		return "col-sm-6"
	default:
		return "col"
	}
}

func inputType(c schema.Control) string {
	switch c {
	case schema.ControlDate:
		return "date"
	default:
		// number controls stay text inputs so non-numeric entries reach the rules.
		return "text"
	}
}

// orderedMessages keeps only fields with a message; encoding/json sorts keys.
func orderedMessages(errs map[string]string) map[string]string {
	out := make(map[string]string, len(errs))
	for _, field := range domain.Fields {
		if msg, ok := errs[string(field)]; ok {
			out[string(field)] = msg
		}
	}
	return out
}

func indentJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", domain.NewInternalError("failed to encode debug panel", err)
	}
	return string(data), nil
}
