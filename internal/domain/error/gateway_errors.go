// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Gateway errors wrap any backend failure, read or write. Reload failures
// leave the previous application state untouched.
var (
	// ErrGateway is the sentinel for any backend call failure.
	ErrGateway = errors.New("gateway call failed")

	// ErrReloadSuperseded signals that a reload finished after a newer one
	// started; its results were discarded without mutating state.
	ErrReloadSuperseded = errors.New("reload superseded")
)

// GatewayErrorCode defines error codes for gateway errors.
// Format: GW-XXYYYY where XX is category and YYYY is specific error.
type GatewayErrorCode string

const (
	ErrCodeGatewayRead    GatewayErrorCode = "GW-010001"
	ErrCodeGatewayWrite   GatewayErrorCode = "GW-010002"
	ErrCodeGatewayReload  GatewayErrorCode = "GW-010003"
	ErrCodeFeedSubscribe  GatewayErrorCode = "GW-020001"
	ErrCodeSessionStorage GatewayErrorCode = "GW-030001"
)

// GatewayError represents a backend failure with code and message. The raw
// backend error is kept for logs via Unwrap but user-visible messages must
// come from Message only.
type GatewayError struct {
	Code    GatewayErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match any GatewayError against the ErrGateway sentinel.
func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}

// NewGatewayError creates a new GatewayError with the given code and message.
func NewGatewayError(code GatewayErrorCode, message string, err error) *GatewayError {
	return &GatewayError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
