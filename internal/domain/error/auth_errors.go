// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUnknownAccount is returned when no account exists for an email.
	ErrUnknownAccount = errors.New("unknown account")

	// ErrPinNotConfigured is returned when the account has no PIN set and
	// an admin must configure one before login can succeed.
	ErrPinNotConfigured = errors.New("pin not configured")

	// ErrPinRequired signals that the account has a PIN and the caller must
	// prompt for it before retrying login.
	ErrPinRequired = errors.New("pin required")

	// ErrInvalidPin is returned when the supplied PIN does not match.
	ErrInvalidPin = errors.New("invalid pin")

	// ErrInvalidToken is returned when an access token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when an access token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrNotAdmin is returned when an operation requires the admin role.
	ErrNotAdmin = errors.New("admin role required")

	// ErrAccountProtected is returned when attempting to delete a protected account.
	ErrAccountProtected = errors.New("account is protected")

	// ErrEmailAlreadyExists is returned when provisioning an account with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPinConfirmationMismatch is returned when the PIN confirmation does not match.
	ErrPinConfirmationMismatch = errors.New("pin confirmation does not match")

	// ErrInvalidPinFormat is returned when the PIN is not a short numeric code.
	ErrInvalidPinFormat = errors.New("pin must be numeric")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Login errors (01XXXX)
	ErrCodeUnknownAccount   AuthErrorCode = "AUTH-010001"
	ErrCodePinNotConfigured AuthErrorCode = "AUTH-010002"
	ErrCodePinRequired      AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidPin       AuthErrorCode = "AUTH-010004"
	ErrCodeRateLimited      AuthErrorCode = "AUTH-010005"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"

	// PIN management errors (03XXXX)
	ErrCodePinMismatch      AuthErrorCode = "AUTH-030001"
	ErrCodeInvalidPinFormat AuthErrorCode = "AUTH-030002"

	// Account administration errors (04XXXX)
	ErrCodeNotAdmin         AuthErrorCode = "AUTH-040001"
	ErrCodeAccountProtected AuthErrorCode = "AUTH-040002"
	ErrCodeEmailExists      AuthErrorCode = "AUTH-040003"
	ErrCodeMissingFields    AuthErrorCode = "AUTH-040004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
