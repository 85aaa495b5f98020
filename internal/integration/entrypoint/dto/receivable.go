package dto

import (
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateReceivableRequest represents the request body for creating a receivable.
type CreateReceivableRequest struct {
	DebtorName   string          `json:"debtor_name" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	DueDate      string          `json:"due_date" binding:"required"`
	Description  string          `json:"description"`
}

// UpdateReceivableRequest represents the request body for updating a receivable.
type UpdateReceivableRequest struct {
	DebtorName   string          `json:"debtor_name" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	DueDate      string          `json:"due_date" binding:"required"`
	Description  string          `json:"description"`
}

// AddInstallmentRequest represents the request body for recording an installment.
type AddInstallmentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ReceivablePayload represents a receivable in API responses.
type ReceivablePayload struct {
	ID            string          `json:"id"`
	DebtorName    string          `json:"debtor_name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Remaining     decimal.Decimal `json:"remaining"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
}

// ToReceivablePayload converts a receivable entity to its API representation.
func ToReceivablePayload(receivable *entity.Receivable) *ReceivablePayload {
	return &ReceivablePayload{
		ID:            receivable.ID.String(),
		DebtorName:    receivable.DebtorName,
		TargetAmount:  receivable.TargetAmount,
		CurrentAmount: receivable.CurrentAmount,
		Remaining:     receivable.Remaining(),
		DueDate:       receivable.DueDate.Format("2006-01-02"),
		Status:        string(receivable.Status),
		Description:   receivable.Description,
	}
}

// ToReceivablePayloads converts a slice of receivable entities.
func ToReceivablePayloads(receivables []*entity.Receivable) []*ReceivablePayload {
	payloads := make([]*ReceivablePayload, len(receivables))
	for i, r := range receivables {
		payloads[i] = ToReceivablePayload(r)
	}
	return payloads
}

// ReceivableListResponse represents the receivable listing.
type ReceivableListResponse struct {
	Receivables []*ReceivablePayload `json:"receivables"`
}

// InstallmentResponse represents the result of an installment or settlement.
type InstallmentResponse struct {
	Receivable  *ReceivablePayload  `json:"receivable"`
	Transaction *TransactionPayload `json:"transaction,omitempty"`
}
