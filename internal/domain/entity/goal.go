// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the DuitKu system.
type Goal struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	Title         string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(accountID uuid.UUID, title string, targetAmount decimal.Decimal, deadline time.Time) *Goal {
	now := time.Now().UTC()
	return &Goal{
		ID:            uuid.New(),
		AccountID:     accountID,
		Title:         title,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Progress returns the goal completion ratio (current/target), or zero when
// the target amount is zero.
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount)
}
