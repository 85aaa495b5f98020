// Package error defines domain-specific errors for the DuitKu application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNotAuthorizedToModifyBudget is returned when the budget does not
	// belong to the acting account.
	ErrNotAuthorizedToModifyBudget = errors.New("not authorized to modify budget")

	// ErrInvalidBudgetPeriod is returned when the period is not weekly, monthly or yearly.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetAmount is returned when the allocated amount is not positive.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetCategory is returned when the category is not an expense category.
	ErrInvalidBudgetCategory = errors.New("budget category must be an expense category")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	ErrCodeInvalidBudgetPeriod   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BGT-010003"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BGT-010004"
	ErrCodeNotAuthorizedBudget   BudgetErrorCode = "BGT-010005"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
