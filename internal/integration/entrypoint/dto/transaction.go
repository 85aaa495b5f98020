package dto

import (
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for creating a transaction.
type CreateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for updating a transaction.
type UpdateTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
}

// TransactionPayload represents a transaction in API responses.
type TransactionPayload struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

// ToTransactionPayload converts a transaction entity to its API representation.
func ToTransactionPayload(txn *entity.Transaction) *TransactionPayload {
	return &TransactionPayload{
		ID:          txn.ID.String(),
		Type:        string(txn.Type),
		Amount:      txn.Amount,
		Category:    txn.Category,
		Description: txn.Description,
		Date:        txn.Date.Format("2006-01-02"),
	}
}

// ToTransactionPayloads converts a slice of transaction entities.
func ToTransactionPayloads(txns []*entity.Transaction) []*TransactionPayload {
	payloads := make([]*TransactionPayload, len(txns))
	for i, t := range txns {
		payloads[i] = ToTransactionPayload(t)
	}
	return payloads
}

// SummaryPayload represents aggregated ledger totals.
type SummaryPayload struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Balance      decimal.Decimal `json:"balance"`
}

// TransactionListResponse represents one page of transactions with totals.
type TransactionListResponse struct {
	Transactions []*TransactionPayload `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PerPage      int                   `json:"per_page"`
	TotalPages   int                   `json:"total_pages"`
	Summary      *SummaryPayload       `json:"summary,omitempty"`
}

// WipeAccountResponse represents the result of a full-account wipe.
type WipeAccountResponse struct {
	Deleted int64 `json:"deleted"`
}
