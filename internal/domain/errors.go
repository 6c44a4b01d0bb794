package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeValidation   ErrorCode = "VALIDATION_ERROR"

	// Form specific errors
	CodeFormNotFound     ErrorCode = "FORM_NOT_FOUND"
	CodeUnknownField     ErrorCode = "UNKNOWN_FIELD"
	CodeSubmitInProgress ErrorCode = "SUBMIT_IN_PROGRESS"
	CodeResultNotReady   ErrorCode = "RESULT_NOT_READY"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail value reported alongside the error.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewFormNotFoundError(formID string) *DomainError {
	return NewError(CodeFormNotFound, fmt.Sprintf("Form not found with ID: %s", formID), nil).
		WithContext("form_id", formID)
}

func NewUnknownFieldError(field string) *DomainError {
	return NewError(CodeUnknownField, fmt.Sprintf("Unknown form field: %s", field), nil).
		WithContext("field", field)
}

func NewSubmitInProgressError(formID string) *DomainError {
	return NewError(CodeSubmitInProgress, "Form is already being submitted", nil).
		WithContext("form_id", formID)
}

func NewResultNotReadyError(formID string) *DomainError {
	return NewError(CodeResultNotReady, "Form has no completed submission yet", nil).
		WithContext("form_id", formID)
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

// ValidationError is a single field-scoped validation message.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned when a submission is blocked by failing rules.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
