// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period a budget allocation covers.
type BudgetPeriod string

const (
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending allocation for an expense category.
type Budget struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
	Period      BudgetPeriod
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(accountID uuid.UUID, category string, amount decimal.Decimal, description string, period BudgetPeriod) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:          uuid.New(),
		AccountID:   accountID,
		Category:    category,
		Amount:      amount,
		Description: description,
		Period:      period,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// PeriodWindow returns the start and end of the budget's current period
// window relative to the given reference time.
func (b *Budget) PeriodWindow(ref time.Time) (time.Time, time.Time) {
	ref = ref.UTC()
	switch b.Period {
	case BudgetPeriodWeekly:
		weekday := int(ref.Weekday())
		start := time.Date(ref.Year(), ref.Month(), ref.Day()-weekday, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 0, 7)
	case BudgetPeriodYearly:
		start := time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0)
	default: // monthly
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0)
	}
}

// BudgetWithConsumed pairs a budget with its consumed amount, derived from
// the expense transactions matching the category within the current period.
type BudgetWithConsumed struct {
	Budget   *Budget
	Consumed decimal.Decimal
}
