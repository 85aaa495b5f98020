// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Bulk import/export domain errors.
var (
	// ErrImportMissingColumns is returned when the import file lacks one or
	// more required columns. The whole file is rejected before any row applies.
	ErrImportMissingColumns = errors.New("import file is missing required columns")

	// ErrImportMalformedFile is returned when the file cannot be parsed at all.
	ErrImportMalformedFile = errors.New("import file is malformed")

	// ErrImportInvalidRow is returned when a row cannot be parsed into a transaction.
	ErrImportInvalidRow = errors.New("import row is invalid")
)

// ImportErrorCode defines error codes for import errors.
// Format: IMP-XXYYYY where XX is category and YYYY is specific error.
type ImportErrorCode string

const (
	ErrCodeImportMissingColumns ImportErrorCode = "IMP-010001"
	ErrCodeImportMalformedFile  ImportErrorCode = "IMP-010002"
	ErrCodeImportInvalidRow     ImportErrorCode = "IMP-010003"
)

// ImportError represents a bulk-import format error with code and message.
type ImportError struct {
	Code    ImportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ImportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError with the given code and message.
func NewImportError(code ImportErrorCode, message string, err error) *ImportError {
	return &ImportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
