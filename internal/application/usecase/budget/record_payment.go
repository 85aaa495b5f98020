package budget

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

// RecordPaymentInput represents the input for recording a payment against a budget.
type RecordPaymentInput struct {
	AccountID   uuid.UUID
	BudgetID    uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// RecordPaymentOutput represents the output of a recorded payment.
type RecordPaymentOutput struct {
	Transaction *entity.Transaction
}

// RecordPaymentUseCase records an expense against a budget's category.
type RecordPaymentUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	workspaces *appsync.Manager,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute writes an expense transaction tagged with the budget's category so
// it counts toward the budget's consumed amount on the next reload.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}
	if budget == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	if budget.AccountID != input.AccountID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"budget belongs to another account",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	description := input.Description
	if description == "" {
		description = "Pembayaran " + budget.Category
	}

	txn := entity.NewTransaction(
		input.AccountID,
		entity.TransactionTypeExpense,
		input.Amount,
		budget.Category,
		description,
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

	return &RecordPaymentOutput{Transaction: txn}, nil
}
