// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceivableStatus represents the settlement status of a receivable.
type ReceivableStatus string

const (
	ReceivableStatusUnpaid ReceivableStatus = "unpaid"
	ReceivableStatusPaid   ReceivableStatus = "paid"
)

// Receivable represents money owed to the account by a debtor.
type Receivable struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	DebtorName    string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal // Paid so far
	DueDate       time.Time
	Status        ReceivableStatus
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewReceivable creates a new Receivable entity.
func NewReceivable(accountID uuid.UUID, debtorName string, targetAmount decimal.Decimal, dueDate time.Time, description string) *Receivable {
	now := time.Now().UTC()
	return &Receivable{
		ID:            uuid.New(),
		AccountID:     accountID,
		DebtorName:    debtorName,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		DueDate:       dueDate,
		Status:        ReceivableStatusUnpaid,
		Description:   description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Remaining returns the amount still owed.
func (r *Receivable) Remaining() decimal.Decimal {
	remaining := r.TargetAmount.Sub(r.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
