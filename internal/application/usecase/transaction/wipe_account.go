// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
)

// WipeAccountInput represents the input for the full-account wipe.
type WipeAccountInput struct {
	AccountID uuid.UUID
}

// WipeAccountOutput represents the output of the wipe.
type WipeAccountOutput struct {
	Deleted int64
}

// WipeAccountUseCase removes every transaction of an account. This is the
// single permitted bulk mutation on the transaction collection.
type WipeAccountUseCase struct {
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewWipeAccountUseCase creates a new WipeAccountUseCase instance.
func NewWipeAccountUseCase(transactionRepo adapter.TransactionRepository, workspaces *appsync.Manager) *WipeAccountUseCase {
	return &WipeAccountUseCase{
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute performs the wipe via write-then-reload.
func (uc *WipeAccountUseCase) Execute(ctx context.Context, input WipeAccountInput) (*WipeAccountOutput, error) {
	var deleted int64

	engine := uc.workspaces.Engine(input.AccountID)
	err := engine.Mutate(ctx, adapter.CollectionTransactions, adapter.ChangeDelete, input.AccountID,
		func(ctx context.Context) error {
			var err error
			deleted, err = uc.transactionRepo.DeleteByAccount(ctx, input.AccountID)
			return err
		})
	if err != nil {
		return nil, err
	}

	slog.Info("Account transactions wiped",
		"accountID", input.AccountID,
		"deleted", deleted,
	)
	return &WipeAccountOutput{Deleted: deleted}, nil
}
