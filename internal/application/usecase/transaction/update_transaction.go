// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	Category      string
	Description   string
	Date          time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles in-place transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository, workspaces *appsync.Manager) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute performs the transaction update via write-then-reload.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateFields(input.Type, input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}

	txn, err := findOwnedTransaction(ctx, uc.transactionRepo, input.AccountID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	txn.Type = input.Type
	txn.Amount = input.Amount
	txn.Category = input.Category
	txn.Description = input.Description
	txn.Date = input.Date
	txn.UpdatedAt = time.Now().UTC()

	engine := uc.workspaces.Engine(input.AccountID)
	err = engine.Mutate(ctx, adapter.CollectionTransactions, adapter.ChangeUpdate, txn.ID,
		func(ctx context.Context) error {
			return uc.transactionRepo.Update(ctx, txn)
		})
	if err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
