// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Input validation errors shared across operations.
var (
	// ErrInvalidAmount is returned when an amount field is not a valid number.
	ErrInvalidAmount = errors.New("amount is not a valid number")

	// ErrMissingField is returned when a required field is empty.
	ErrMissingField = errors.New("required field is missing")
)

// ValidationErrorCode defines error codes for validation errors.
// Format: VAL-XXYYYY where XX is category and YYYY is specific error.
type ValidationErrorCode string

const (
	ErrCodeInvalidAmount ValidationErrorCode = "VAL-010001"
	ErrCodeMissingField  ValidationErrorCode = "VAL-010002"
)

// ValidationError represents an input validation error with code and message.
type ValidationError struct {
	Code    ValidationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError with the given code and message.
func NewValidationError(code ValidationErrorCode, message string, err error) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
