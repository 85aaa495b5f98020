package receivable

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
)

// DeleteReceivableInput represents the input for receivable deletion.
type DeleteReceivableInput struct {
	AccountID    uuid.UUID
	ReceivableID uuid.UUID
}

// DeleteReceivableUseCase handles receivable deletion logic.
type DeleteReceivableUseCase struct {
	receivableRepo adapter.ReceivableRepository
	workspaces     *appsync.Manager
}

// NewDeleteReceivableUseCase creates a new DeleteReceivableUseCase instance.
func NewDeleteReceivableUseCase(receivableRepo adapter.ReceivableRepository, workspaces *appsync.Manager) *DeleteReceivableUseCase {
	return &DeleteReceivableUseCase{
		receivableRepo: receivableRepo,
		workspaces:     workspaces,
	}
}

// Execute performs the receivable deletion via write-then-reload. Income
// transactions recorded for past installments stay in the ledger.
func (uc *DeleteReceivableUseCase) Execute(ctx context.Context, input DeleteReceivableInput) error {
	receivable, err := findOwnedReceivable(ctx, uc.receivableRepo, input.AccountID, input.ReceivableID)
	if err != nil {
		return err
	}

	engine := uc.workspaces.Engine(input.AccountID)
	return engine.Mutate(ctx, adapter.CollectionReceivables, adapter.ChangeDelete, receivable.ID,
		func(ctx context.Context) error {
			return uc.receivableRepo.Delete(ctx, receivable.ID)
		})
}
