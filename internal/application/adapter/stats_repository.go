// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SystemStats represents system-wide aggregate figures for the admin overview.
type SystemStats struct {
	AccountCount     int64
	TransactionCount int64
	TotalVolume      decimal.Decimal
}

// ActiveAccountStat represents one entry of the top-active-accounts aggregate.
type ActiveAccountStat struct {
	AccountID        uuid.UUID
	Email            string
	Name             string
	TransactionCount int64
}

// MonthlyGrowthStat represents account signups aggregated per calendar month.
type MonthlyGrowthStat struct {
	Month    time.Time
	Accounts int64
}

// StatsRepository defines named aggregate procedures executed on the backend.
type StatsRepository interface {
	// GetSystemStats returns system-wide account and transaction totals.
	GetSystemStats(ctx context.Context) (*SystemStats, error)

	// GetTopActiveAccounts returns the accounts with the most transactions.
	GetTopActiveAccounts(ctx context.Context, limit int) ([]*ActiveAccountStat, error)

	// GetMonthlyAccountGrowth returns signups per month for the last n months.
	GetMonthlyAccountGrowth(ctx context.Context, months int) ([]*MonthlyGrowthStat, error)
}
