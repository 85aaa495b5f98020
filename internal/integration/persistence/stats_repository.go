package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/duitku/backend/internal/application/adapter"
)

// statsRepository implements the adapter.StatsRepository interface. All
// figures are computed on the database so they reflect the full dataset
// regardless of what any workspace has loaded.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance.
func NewStatsRepository(db *gorm.DB) adapter.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// GetSystemStats returns system-wide account and transaction totals.
func (r *statsRepository) GetSystemStats(ctx context.Context) (*adapter.SystemStats, error) {
	var result struct {
		AccountCount     int64           `gorm:"column:account_count"`
		TransactionCount int64           `gorm:"column:transaction_count"`
		TotalVolume      decimal.Decimal `gorm:"column:total_volume"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				(SELECT COUNT(*) FROM accounts) as account_count,
				(SELECT COUNT(*) FROM transactions) as transaction_count,
				(SELECT COALESCE(SUM(amount), 0) FROM transactions) as total_volume
		`).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get system stats: %w", err)
	}

	return &adapter.SystemStats{
		AccountCount:     result.AccountCount,
		TransactionCount: result.TransactionCount,
		TotalVolume:      result.TotalVolume,
	}, nil
}

// GetTopActiveAccounts returns the accounts with the most transactions.
func (r *statsRepository) GetTopActiveAccounts(ctx context.Context, limit int) ([]*adapter.ActiveAccountStat, error) {
	var results []struct {
		AccountID        uuid.UUID `gorm:"column:account_id"`
		Email            string    `gorm:"column:email"`
		Name             string    `gorm:"column:name"`
		TransactionCount int64     `gorm:"column:transaction_count"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				a.id as account_id,
				a.email as email,
				a.name as name,
				COUNT(t.id) as transaction_count
			FROM accounts a
			LEFT JOIN transactions t ON t.account_id = a.id
			GROUP BY a.id, a.email, a.name
			ORDER BY transaction_count DESC, a.created_at ASC
			LIMIT ?
		`, limit).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top active accounts: %w", err)
	}

	stats := make([]*adapter.ActiveAccountStat, len(results))
	for i, row := range results {
		stats[i] = &adapter.ActiveAccountStat{
			AccountID:        row.AccountID,
			Email:            row.Email,
			Name:             row.Name,
			TransactionCount: row.TransactionCount,
		}
	}
	return stats, nil
}

// GetMonthlyAccountGrowth returns signups per month for the last n months.
func (r *statsRepository) GetMonthlyAccountGrowth(ctx context.Context, months int) ([]*adapter.MonthlyGrowthStat, error) {
	since := time.Now().UTC().AddDate(0, -months, 0)

	var results []struct {
		Month    time.Time `gorm:"column:month"`
		Accounts int64     `gorm:"column:accounts"`
	}

	err := r.db.WithContext(ctx).
		Raw(`
			SELECT
				date_trunc('month', created_at)::date as month,
				COUNT(*) as accounts
			FROM accounts
			WHERE created_at >= ?
			GROUP BY date_trunc('month', created_at)
			ORDER BY month
		`, since).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly account growth: %w", err)
	}

	stats := make([]*adapter.MonthlyGrowthStat, len(results))
	for i, row := range results {
		stats[i] = &adapter.MonthlyGrowthStat{
			Month:    row.Month,
			Accounts: row.Accounts,
		}
	}
	return stats, nil
}
