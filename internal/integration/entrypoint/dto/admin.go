package dto

import (
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
)

// SystemStatsPayload represents system-wide aggregate figures.
type SystemStatsPayload struct {
	AccountCount     int64           `json:"account_count"`
	TransactionCount int64           `json:"transaction_count"`
	TotalVolume      decimal.Decimal `json:"total_volume"`
}

// ActiveAccountPayload represents one entry of the top-active-accounts list.
type ActiveAccountPayload struct {
	AccountID        string `json:"account_id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	TransactionCount int64  `json:"transaction_count"`
}

// MonthlyGrowthPayload represents account signups for one calendar month.
type MonthlyGrowthPayload struct {
	Month    string `json:"month"`
	Accounts int64  `json:"accounts"`
}

// SystemOverviewResponse represents the admin overview aggregates.
type SystemOverviewResponse struct {
	Stats         *SystemStatsPayload     `json:"stats"`
	TopAccounts   []*ActiveAccountPayload `json:"top_accounts"`
	MonthlyGrowth []*MonthlyGrowthPayload `json:"monthly_growth"`
}

// ToSystemOverviewResponse converts the aggregate results to the API shape.
func ToSystemOverviewResponse(stats *adapter.SystemStats, top []*adapter.ActiveAccountStat, growth []*adapter.MonthlyGrowthStat) *SystemOverviewResponse {
	resp := &SystemOverviewResponse{
		Stats: &SystemStatsPayload{
			AccountCount:     stats.AccountCount,
			TransactionCount: stats.TransactionCount,
			TotalVolume:      stats.TotalVolume,
		},
		TopAccounts:   make([]*ActiveAccountPayload, len(top)),
		MonthlyGrowth: make([]*MonthlyGrowthPayload, len(growth)),
	}
	for i, t := range top {
		resp.TopAccounts[i] = &ActiveAccountPayload{
			AccountID:        t.AccountID.String(),
			Email:            t.Email,
			Name:             t.Name,
			TransactionCount: t.TransactionCount,
		}
	}
	for i, g := range growth {
		resp.MonthlyGrowth[i] = &MonthlyGrowthPayload{
			Month:    g.Month.Format("2006-01"),
			Accounts: g.Accounts,
		}
	}
	return resp
}

// AccountListResponse represents one page of accounts.
type AccountListResponse struct {
	Accounts   []*AccountPayload `json:"accounts"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// AccountSummaryResponse represents one account's ledger totals.
type AccountSummaryResponse struct {
	Account *AccountPayload `json:"account"`
	Summary *SummaryPayload `json:"summary"`
}
