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

// UpdateReceivableInput represents the input for receivable updates.
type UpdateReceivableInput struct {
	AccountID    uuid.UUID
	ReceivableID uuid.UUID
	DebtorName   string
	TargetAmount decimal.Decimal
	DueDate      time.Time
	Description  string
}

// UpdateReceivableOutput represents the output of a receivable update.
type UpdateReceivableOutput struct {
	Receivable *entity.Receivable
}

// UpdateReceivableUseCase handles receivable update logic.
type UpdateReceivableUseCase struct {
	receivableRepo adapter.ReceivableRepository
	workspaces     *appsync.Manager
}

// NewUpdateReceivableUseCase creates a new UpdateReceivableUseCase instance.
func NewUpdateReceivableUseCase(receivableRepo adapter.ReceivableRepository, workspaces *appsync.Manager) *UpdateReceivableUseCase {
	return &UpdateReceivableUseCase{
		receivableRepo: receivableRepo,
		workspaces:     workspaces,
	}
}

// Execute performs the receivable update via write-then-reload. Paid
// progress and status are never edited directly; they move through
// installments and settlement. Raising the target above the amount already
// paid flips a paid receivable back to unpaid.
func (uc *UpdateReceivableUseCase) Execute(ctx context.Context, input UpdateReceivableInput) (*UpdateReceivableOutput, error) {
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

	receivable, err := findOwnedReceivable(ctx, uc.receivableRepo, input.AccountID, input.ReceivableID)
	if err != nil {
		return nil, err
	}

	receivable.DebtorName = input.DebtorName
	receivable.TargetAmount = input.TargetAmount
	receivable.DueDate = input.DueDate
	receivable.Description = input.Description
	if receivable.CurrentAmount.GreaterThanOrEqual(receivable.TargetAmount) {
		receivable.Status = entity.ReceivableStatusPaid
	} else {
		receivable.Status = entity.ReceivableStatusUnpaid
	}
	receivable.UpdatedAt = time.Now().UTC()

	engine := uc.workspaces.Engine(input.AccountID)
	err = engine.Mutate(ctx, adapter.CollectionReceivables, adapter.ChangeUpdate, receivable.ID,
		func(ctx context.Context) error {
			return uc.receivableRepo.Update(ctx, receivable)
		})
	if err != nil {
		return nil, err
	}

	return &UpdateReceivableOutput{Receivable: receivable}, nil
}
