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

// AddInstallmentInput represents the input for recording an installment.
type AddInstallmentInput struct {
	AccountID    uuid.UUID
	ReceivableID uuid.UUID
	Amount       decimal.Decimal
}

// AddInstallmentOutput represents the output of a recorded installment.
type AddInstallmentOutput struct {
	Receivable  *entity.Receivable
	Transaction *entity.Transaction
}

// AddInstallmentUseCase records a partial repayment: an income transaction
// in the ledger, then a raised paid amount on the receivable.
type AddInstallmentUseCase struct {
	receivableRepo  adapter.ReceivableRepository
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewAddInstallmentUseCase creates a new AddInstallmentUseCase instance.
func NewAddInstallmentUseCase(
	receivableRepo adapter.ReceivableRepository,
	transactionRepo adapter.TransactionRepository,
	workspaces *appsync.Manager,
) *AddInstallmentUseCase {
	return &AddInstallmentUseCase{
		receivableRepo:  receivableRepo,
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute performs the two writes in order: ledger first, receivable record
// second. Reaching the target amount marks the receivable paid. A failure
// on the second write after the ledger write succeeded is reported as an
// explicit partial application.
func (uc *AddInstallmentUseCase) Execute(ctx context.Context, input AddInstallmentInput) (*AddInstallmentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewReceivableError(
			domainerror.ErrCodeInvalidInstallmentAmount,
			"installment amount must be greater than zero",
			domainerror.ErrInvalidInstallmentAmount,
		)
	}

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

	txn := entity.NewTransaction(
		input.AccountID,
		entity.TransactionTypeIncome,
		input.Amount,
		entity.CategoryOther,
		"Cicilan dari "+receivable.DebtorName,
		time.Now().UTC(),
	)

	engine := uc.workspaces.Engine(input.AccountID)
	err = engine.Mutate(ctx, adapter.CollectionTransactions, adapter.ChangeInsert, txn.ID,
		func(ctx context.Context) error {
			return uc.transactionRepo.Create(ctx, txn)
		})
	if err != nil {
		return nil, err
	}

	receivable.CurrentAmount = receivable.CurrentAmount.Add(input.Amount)
	if receivable.CurrentAmount.GreaterThanOrEqual(receivable.TargetAmount) {
		receivable.Status = entity.ReceivableStatusPaid
	}
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

	return &AddInstallmentOutput{Receivable: receivable, Transaction: txn}, nil
}
