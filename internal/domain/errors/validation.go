package errors

import (
	"net/http"
	"strings"
)

// FieldError describes a single offending input field. Write operations
// are rejected wholesale; every offending field is enumerated, not just
// the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is an AppError that carries per-field detail.
type ValidationError struct {
	message string
	fields  []FieldError
}

// NewValidationError creates a validation error enumerating the offending fields.
func NewValidationError(message string, fields []FieldError) *ValidationError {
	return &ValidationError{
		message: message,
		fields:  fields,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return e.message
	}

	parts := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return e.message + " (" + strings.Join(parts, "; ") + ")"
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return ""
}

// Fields returns the per-field validation errors.
func (e *ValidationError) Fields() []FieldError {
	return e.fields
}
