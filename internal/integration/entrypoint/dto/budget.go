package dto

import (
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Period      string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// UpdateBudgetRequest represents the request body for updating a budget.
type UpdateBudgetRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
	Period      string          `json:"period" binding:"required,oneof=weekly monthly yearly"`
}

// RecordPaymentRequest represents the request body for recording a payment
// against a budget.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// BudgetPayload represents a budget in API responses, including the
// consumed amount derived for the current period window.
type BudgetPayload struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Period      string          `json:"period"`
	Consumed    decimal.Decimal `json:"consumed"`
}

// ToBudgetPayload converts a budget entity to its API representation.
func ToBudgetPayload(budget *entity.Budget, consumed decimal.Decimal) *BudgetPayload {
	return &BudgetPayload{
		ID:          budget.ID.String(),
		Category:    budget.Category,
		Amount:      budget.Amount,
		Description: budget.Description,
		Period:      string(budget.Period),
		Consumed:    consumed,
	}
}

// BudgetListResponse represents the budget listing with consumption.
type BudgetListResponse struct {
	Budgets []*BudgetPayload `json:"budgets"`
}
