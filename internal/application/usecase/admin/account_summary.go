package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// AccountSummaryInput represents the input for inspecting one account.
type AccountSummaryInput struct {
	ActingAccountID uuid.UUID
	TargetAccountID uuid.UUID
}

// AccountSummaryOutput represents one account's ledger totals.
type AccountSummaryOutput struct {
	Account *entity.Account
	Summary *entity.TransactionSummary
}

// AccountSummaryUseCase lets an admin inspect another account's totals
// without opening that account's workspace.
type AccountSummaryUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewAccountSummaryUseCase creates a new AccountSummaryUseCase instance.
func NewAccountSummaryUseCase(accountRepo adapter.AccountRepository, transactionRepo adapter.TransactionRepository) *AccountSummaryUseCase {
	return &AccountSummaryUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute returns the target account's all-time income, expense and balance.
func (uc *AccountSummaryUseCase) Execute(ctx context.Context, input AccountSummaryInput) (*AccountSummaryOutput, error) {
	if err := requireAdmin(ctx, uc.accountRepo, input.ActingAccountID); err != nil {
		return nil, err
	}

	target, err := uc.accountRepo.FindByID(ctx, input.TargetAccountID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnknownAccount,
			"account not found",
			domainerror.ErrUnknownAccount,
		)
	}

	summary, err := uc.transactionRepo.GetSummary(ctx, adapter.TransactionFilter{AccountID: target.ID})
	if err != nil {
		return nil, err
	}

	return &AccountSummaryOutput{Account: target, Summary: summary}, nil
}
