package errors

import (
	"net/http"

	"virtualcheck/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Structured details for 4xx responses (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying details.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError sharing the same business error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Predefined error types
var (
	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		nil,
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		nil,
	)

	// Redemption-related errors
	ErrInvalidHash = NewBaseError(
		http.StatusBadRequest,
		"INVALID_HASH",
		"This virtual check is not valid",
		nil,
	)

	ErrDuplicateContact = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_CONTACT",
		"This email is already registered for this virtual check",
		nil,
	)

	ErrContactCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"CREATE_ERROR",
		"Could not register the contact, please try again later",
		nil,
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many submissions, please try again later",
		nil,
	)

	// Admin directory errors
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_FIELDS",
		"Required fields are missing",
		nil,
	)

	ErrUnknownContactField = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_FIELD",
		"The field cannot be updated",
		nil,
	)

	ErrRelationExists = NewBaseError(
		http.StatusConflict,
		"RELATION_EXISTS",
		"The agency and store are already linked",
		nil,
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)
)

// RecordStoreError represents a failed call to the record store, implementing the AppError interface
type RecordStoreError struct {
	err       error
	operation string
}

// NewRecordStoreError creates a record-store-related error
func NewRecordStoreError(err error, operation string) AppError {
	return &RecordStoreError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *RecordStoreError) Error() string {
	return errors.Wrapf(e.err, "record store %s failed", e.operation).Error()
}

// Unwrap exposes the underlying transport error
func (e *RecordStoreError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *RecordStoreError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *RecordStoreError) ErrorCode() string {
	return "INTERNAL_ERROR"
}

// Message returns the user-friendly error message
func (e *RecordStoreError) Message() string {
	return "Internal server error"
}

// Details never exposes internal detail for backend failures
func (e *RecordStoreError) Details() any {
	return nil
}
