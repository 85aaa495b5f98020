// Package receivable contains receivable (money owed) use cases.
package receivable

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// CreateReceivableInput represents the input for receivable creation.
type CreateReceivableInput struct {
	AccountID    uuid.UUID
	DebtorName   string
	TargetAmount decimal.Decimal
	DueDate      time.Time
	Description  string
}

// CreateReceivableOutput represents the output of receivable creation.
type CreateReceivableOutput struct {
	Receivable *entity.Receivable
}

// CreateReceivableUseCase handles receivable creation logic.
type CreateReceivableUseCase struct {
	receivableRepo adapter.ReceivableRepository
	workspaces     *appsync.Manager
}

// NewCreateReceivableUseCase creates a new CreateReceivableUseCase instance.
func NewCreateReceivableUseCase(receivableRepo adapter.ReceivableRepository, workspaces *appsync.Manager) *CreateReceivableUseCase {
	return &CreateReceivableUseCase{
		receivableRepo: receivableRepo,
		workspaces:     workspaces,
	}
}

// Execute performs the receivable creation via write-then-reload.
func (uc *CreateReceivableUseCase) Execute(ctx context.Context, input CreateReceivableInput) (*CreateReceivableOutput, error) {
	if input.DebtorName == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			"debtor name is required",
			domainerror.ErrMissingField,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewReceivableError(
			domainerror.ErrCodeInvalidInstallmentAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidInstallmentAmount,
		)
	}

	receivable := entity.NewReceivable(input.AccountID, input.DebtorName, input.TargetAmount, input.DueDate, input.Description)

	engine := uc.workspaces.Engine(input.AccountID)
	err := engine.Mutate(ctx, adapter.CollectionReceivables, adapter.ChangeInsert, receivable.ID,
		func(ctx context.Context) error {
			return uc.receivableRepo.Create(ctx, receivable)
		})
	if err != nil {
		return nil, err
	}

	return &CreateReceivableOutput{Receivable: receivable}, nil
}

// findOwnedReceivable loads a receivable and verifies ownership.
func findOwnedReceivable(ctx context.Context, repo adapter.ReceivableRepository, accountID, receivableID uuid.UUID) (*entity.Receivable, error) {
	receivable, err := repo.FindByID(ctx, receivableID)
	if err != nil {
		return nil, err
	}
	if receivable == nil {
		return nil, domainerror.NewReceivableError(
			domainerror.ErrCodeReceivableNotFound,
			"receivable not found",
			domainerror.ErrReceivableNotFound,
		)
	}
	if receivable.AccountID != accountID {
		return nil, domainerror.NewReceivableError(
			domainerror.ErrCodeNotAuthorizedReceivable,
			"receivable belongs to another account",
			domainerror.ErrNotAuthorizedToModifyReceivable,
		)
	}
	return receivable, nil
}
