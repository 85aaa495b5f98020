// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	AccountID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Category  string
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the backend.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest date
	// first, with offset/limit pagination and a total row count.
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// GetSummary aggregates income and expense totals over the filter range.
	GetSummary(ctx context.Context, filter TransactionFilter) (*entity.TransactionSummary, error)

	// SumExpensesByCategory sums expense amounts for one category within a
	// date window. Used to derive budget consumption.
	SumExpensesByCategory(ctx context.Context, accountID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error)

	// Update updates an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAccount removes every transaction of an account (full-account
	// wipe, the single permitted bulk mutation). Returns the removed count.
	DeleteByAccount(ctx context.Context, accountID uuid.UUID) (int64, error)
}
