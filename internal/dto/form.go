package dto

import (
	"time"

	"quiz-form/internal/domain"
)

// FieldChangeRequest reports a keystroke or selection change.
// @Description Change event for one field
type FieldChangeRequest struct {
	Field string `json:"field" example:"quizTitle"`
	Value string `json:"value" example:"Go Basics"`
}

// FieldBlurRequest reports that a field lost focus.
// @Description Blur event for one field
type FieldBlurRequest struct {
	Field string `json:"field" example:"quizTitle"`
}

// FormStateResponse is the full state of a form session.
// @Description Form values, errors and bookkeeping flags
type FormStateResponse struct {
	ID            string            `json:"id"`
	Mode          string            `json:"mode"`
	Values        domain.FormValues `json:"values"`
	Errors        map[string]string `json:"errors"`
	VisibleErrors map[string]string `json:"visibleErrors"`
	Touched       map[string]bool   `json:"touched"`
	Dirty         bool              `json:"dirty"`
	IsValid       bool              `json:"isValid"`
	IsSubmitting  bool              `json:"isSubmitting"`
	SubmitCount   int               `json:"submitCount"`
	HasResult     bool              `json:"hasResult"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// SubmitResponse is the outcome of a submit click.
// @Description Submit outcome; blocked submissions carry the failing fields
type SubmitResponse struct {
	Accepted bool                     `json:"accepted"`
	Errors   []domain.ValidationError `json:"errors,omitempty"`
	State    FormStateResponse        `json:"state"`
}

// SubmissionResultResponse carries the serialized values of a completed submit.
// @Description Completed submission
type SubmissionResultResponse struct {
	FormID      string            `json:"formId"`
	Values      domain.FormValues `json:"values"`
	Payload     string            `json:"payload"`
	CompletedAt time.Time         `json:"completedAt"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
