// Package admin contains admin-only aggregate and account management use cases.
package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

const (
	defaultTopAccounts  = 5
	defaultGrowthMonths = 6
)

// SystemOverviewInput represents the input for the admin overview.
type SystemOverviewInput struct {
	ActingAccountID uuid.UUID
}

// SystemOverviewOutput represents the admin overview aggregates.
type SystemOverviewOutput struct {
	Stats         *adapter.SystemStats
	TopAccounts   []*adapter.ActiveAccountStat
	MonthlyGrowth []*adapter.MonthlyGrowthStat
}

// SystemOverviewUseCase assembles the aggregates shown on the admin page.
type SystemOverviewUseCase struct {
	accountRepo adapter.AccountRepository
	statsRepo   adapter.StatsRepository
}

// NewSystemOverviewUseCase creates a new SystemOverviewUseCase instance.
func NewSystemOverviewUseCase(accountRepo adapter.AccountRepository, statsRepo adapter.StatsRepository) *SystemOverviewUseCase {
	return &SystemOverviewUseCase{
		accountRepo: accountRepo,
		statsRepo:   statsRepo,
	}
}

// Execute runs the three aggregate procedures on the backend. None of the
// figures are computed from workspace state; they always reflect the full
// dataset.
func (uc *SystemOverviewUseCase) Execute(ctx context.Context, input SystemOverviewInput) (*SystemOverviewOutput, error) {
	if err := requireAdmin(ctx, uc.accountRepo, input.ActingAccountID); err != nil {
		return nil, err
	}

	stats, err := uc.statsRepo.GetSystemStats(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.statsRepo.GetTopActiveAccounts(ctx, defaultTopAccounts)
	if err != nil {
		return nil, err
	}
	growth, err := uc.statsRepo.GetMonthlyAccountGrowth(ctx, defaultGrowthMonths)
	if err != nil {
		return nil, err
	}

	return &SystemOverviewOutput{
		Stats:         stats,
		TopAccounts:   top,
		MonthlyGrowth: growth,
	}, nil
}

// requireAdmin verifies the acting account exists and holds the admin role.
func requireAdmin(ctx context.Context, repo adapter.AccountRepository, accountID uuid.UUID) error {
	account, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeUnknownAccount,
			"account not found",
			domainerror.ErrUnknownAccount,
		)
	}
	if !account.IsAdmin() {
		return domainerror.NewAuthError(
			domainerror.ErrCodeNotAdmin,
			"admin role required",
			domainerror.ErrNotAdmin,
		)
	}
	return nil
}
