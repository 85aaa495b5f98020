// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Message string
}

// DeleteTransactionUseCase handles individual transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository, workspaces *appsync.Manager) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute performs the deletion via write-then-reload.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	txn, err := findOwnedTransaction(ctx, uc.transactionRepo, input.AccountID, input.TransactionID)
	if err != nil {
		return nil, err
	}

	engine := uc.workspaces.Engine(input.AccountID)
	err = engine.Mutate(ctx, adapter.CollectionTransactions, adapter.ChangeDelete, txn.ID,
		func(ctx context.Context) error {
			return uc.transactionRepo.Delete(ctx, txn.ID)
		})
	if err != nil {
		return nil, err
	}

	return &DeleteTransactionOutput{Message: "Transaction deleted"}, nil
}
