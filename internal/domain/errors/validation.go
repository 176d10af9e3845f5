package errors

import "net/http"

// FieldErrors maps a submitted field name to its validation messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// ValidationError carries per-field errors plus the submitted values, so a
// form can be shown again without losing input.
type ValidationError struct {
	Fields FieldErrors
	Values any
}

// NewValidationError creates a validation error for the given fields.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

// WithValues returns a copy that echoes the submitted values.
func (e *ValidationError) WithValues(values any) *ValidationError {
	return &ValidationError{Fields: e.Fields, Values: values}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the field errors and echoed values
func (e *ValidationError) Details() any {
	return map[string]any{
		"errors": e.Fields,
		"values": e.Values,
	}
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
