// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Receivable domain errors.
var (
	// ErrReceivableNotFound is returned when a receivable is not found.
	ErrReceivableNotFound = errors.New("receivable not found")

	// ErrNotAuthorizedToModifyReceivable is returned when the receivable
	// does not belong to the acting account.
	ErrNotAuthorizedToModifyReceivable = errors.New("not authorized to modify receivable")

	// ErrInvalidInstallmentAmount is returned when an installment amount is invalid.
	ErrInvalidInstallmentAmount = errors.New("invalid installment amount")

	// ErrReceivableAlreadyPaid is returned when recording against a settled receivable.
	ErrReceivableAlreadyPaid = errors.New("receivable already paid")

	// ErrReceivableRecordUpdateFailed is returned when the income transaction
	// was written but the receivable record update failed afterwards.
	ErrReceivableRecordUpdateFailed = errors.New("ledger updated, receivable record update failed")
)

// ReceivableErrorCode defines error codes for receivable errors.
// Format: RCV-XXYYYY where XX is category and YYYY is specific error.
type ReceivableErrorCode string

const (
	ErrCodeInvalidInstallmentAmount     ReceivableErrorCode = "RCV-010001"
	ErrCodeReceivableNotFound           ReceivableErrorCode = "RCV-010002"
	ErrCodeNotAuthorizedReceivable      ReceivableErrorCode = "RCV-010003"
	ErrCodeReceivableAlreadyPaid        ReceivableErrorCode = "RCV-010004"
	ErrCodeReceivableRecordUpdateFailed ReceivableErrorCode = "RCV-020001"
)

// ReceivableError represents a receivable error with code and message.
type ReceivableError struct {
	Code    ReceivableErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceivableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceivableError) Unwrap() error {
	return e.Err
}

// NewReceivableError creates a new ReceivableError with the given code and message.
func NewReceivableError(code ReceivableErrorCode, message string, err error) *ReceivableError {
	return &ReceivableError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
