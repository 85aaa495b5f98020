package goal

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

// AddFundsInput represents the input for adding funds to a goal.
type AddFundsInput struct {
	AccountID uuid.UUID
	GoalID    uuid.UUID
	Amount    decimal.Decimal
}

// AddFundsOutput represents the output of a fund addition.
type AddFundsOutput struct {
	Goal        *entity.Goal
	Transaction *entity.Transaction
}

// AddFundsUseCase moves money into a goal: it records a savings expense in
// the ledger and then raises the goal's accumulated amount.
type AddFundsUseCase struct {
	goalRepo        adapter.GoalRepository
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewAddFundsUseCase creates a new AddFundsUseCase instance.
func NewAddFundsUseCase(
	goalRepo adapter.GoalRepository,
	transactionRepo adapter.TransactionRepository,
	workspaces *appsync.Manager,
) *AddFundsUseCase {
	return &AddFundsUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute performs the two writes in order: ledger first, goal record
// second. If the ledger write fails nothing is applied. If the goal update
// fails after the ledger write succeeded, the caller gets an explicit
// partial-application error so the mismatch is never silent.
func (uc *AddFundsUseCase) Execute(ctx context.Context, input AddFundsInput) (*AddFundsOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.AccountID, input.GoalID)
	if err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.AccountID,
		entity.TransactionTypeExpense,
		input.Amount,
		entity.CategorySavings,
		"Menabung untuk "+goal.Title,
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

	goal.CurrentAmount = goal.CurrentAmount.Add(input.Amount)
	goal.UpdatedAt = time.Now().UTC()

	var writeErr error
	err = engine.Mutate(ctx, adapter.CollectionGoals, adapter.ChangeUpdate, goal.ID,
		func(ctx context.Context) error {
			writeErr = uc.goalRepo.Update(ctx, goal)
			return writeErr
		})
	if writeErr != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalRecordUpdateFailed,
			"ledger updated, goal record update failed",
			domainerror.ErrGoalRecordUpdateFailed,
		)
	}
	if err != nil {
		return nil, err
	}

	return &AddFundsOutput{Goal: goal, Transaction: txn}, nil
}
