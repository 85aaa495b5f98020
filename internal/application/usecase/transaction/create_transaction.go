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
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	AccountID   uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	workspaces      *appsync.Manager
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, workspaces *appsync.Manager) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		workspaces:      workspaces,
	}
}

// Execute performs the transaction creation via write-then-reload.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateFields(input.Type, input.Amount, input.Category, input.Date); err != nil {
		return nil, err
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			"description is too long",
			nil,
		)
	}

	txn := entity.NewTransaction(
		input.AccountID,
		input.Type,
		input.Amount,
		input.Category,
		input.Description,
		input.Date,
	)

	engine := uc.workspaces.Engine(input.AccountID)
	err := engine.Mutate(ctx, adapter.CollectionTransactions, adapter.ChangeInsert, txn.ID,
		func(ctx context.Context) error {
			return uc.transactionRepo.Create(ctx, txn)
		})
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}
