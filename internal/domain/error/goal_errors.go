// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrNotAuthorizedToModifyGoal is returned when the goal does not
	// belong to the acting account.
	ErrNotAuthorizedToModifyGoal = errors.New("not authorized to modify goal")

	// ErrInvalidGoalAmount is returned when a goal amount is invalid.
	ErrInvalidGoalAmount = errors.New("invalid goal amount")

	// ErrGoalRecordUpdateFailed is returned when the funding transaction was
	// written but the goal record update failed afterwards.
	ErrGoalRecordUpdateFailed = errors.New("ledger updated, goal record update failed")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeInvalidGoalAmount      GoalErrorCode = "GOL-010001"
	ErrCodeGoalNotFound           GoalErrorCode = "GOL-010002"
	ErrCodeNotAuthorizedGoal      GoalErrorCode = "GOL-010003"
	ErrCodeGoalRecordUpdateFailed GoalErrorCode = "GOL-020001"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
