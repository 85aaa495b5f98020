package receivable

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// SettleReceivableInput represents the input for settling a receivable in full.
type SettleReceivableInput struct {
	AccountID    uuid.UUID
	ReceivableID uuid.UUID
}

// SettleReceivableOutput represents the output of a settlement.
type SettleReceivableOutput struct {
	Receivable  *entity.Receivable
	Transaction *entity.Transaction
}

// SettleReceivableUseCase settles the remaining balance of a receivable in
// a single step: one income transaction for the outstanding amount, then
// the receivable marked paid.
type SettleReceivableUseCase struct {
	receivableRepo  adapter.ReceivableRepository
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewSettleReceivableUseCase creates a new SettleReceivableUseCase instance.
func NewSettleReceivableUseCase(
	receivableRepo adapter.ReceivableRepository,
	transactionRepo adapter.TransactionRepository,
	workspaces *appsync.Manager,
) *SettleReceivableUseCase {
	return &SettleReceivableUseCase{
		receivableRepo:  receivableRepo,
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute records the remaining amount as income and marks the receivable
// paid. Ledger first, record second, with partial application surfaced
// explicitly.
func (uc *SettleReceivableUseCase) Execute(ctx context.Context, input SettleReceivableInput) (*SettleReceivableOutput, error) {
	receivable, err := findOwnedReceivable(ctx, uc.receivableRepo, input.AccountID, input.ReceivableID)
	if err != nil {
		return nil, err
	}
	if receivable.Status == entity.ReceivableStatusPaid {
		return nil, domainerror.NewReceivableError(
			domainerror.ErrCodeReceivableAlreadyPaid,
			"receivable is already settled",
			domainerror.ErrReceivableAlreadyPaid,
		)
	}

	remaining := receivable.Remaining()
	engine := uc.workspaces.Engine(input.AccountID)

	var txn *entity.Transaction
	if remaining.IsPositive() {
		txn = entity.NewTransaction(
			input.AccountID,
			entity.TransactionTypeIncome,
			remaining,
			entity.CategoryOther,
			"Pelunasan dari "+receivable.DebtorName,
			time.Now().UTC(),
		)
		err = engine.Mutate(ctx, adapter.CollectionTransactions, adapter.ChangeInsert, txn.ID,
			func(ctx context.Context) error {
				return uc.transactionRepo.Create(ctx, txn)
			})
		if err != nil {
			return nil, err
		}
	}

	receivable.CurrentAmount = receivable.TargetAmount
	receivable.Status = entity.ReceivableStatusPaid
	receivable.UpdatedAt = time.Now().UTC()

	var writeErr error
	err = engine.Mutate(ctx, adapter.CollectionReceivables, adapter.ChangeUpdate, receivable.ID,
		func(ctx context.Context) error {
			writeErr = uc.receivableRepo.Update(ctx, receivable)
			return writeErr
		})
	if writeErr != nil {
		return nil, domainerror.NewReceivableError(
			domainerror.ErrCodeReceivableRecordUpdateFailed,
			"ledger updated, receivable record update failed",
			domainerror.ErrReceivableRecordUpdateFailed,
		)
	}
	if err != nil {
		return nil, err
	}

	return &SettleReceivableOutput{Receivable: receivable, Transaction: txn}, nil
}
