package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	AccountID uuid.UUID
	BudgetID  uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	workspaces *appsync.Manager
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository, workspaces *appsync.Manager) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		workspaces: workspaces,
	}
}

// Execute performs the budget deletion via write-then-reload.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return err
	}
	if budget == nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	if budget.AccountID != input.AccountID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"budget belongs to another account",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	engine := uc.workspaces.Engine(input.AccountID)
	return engine.Mutate(ctx, adapter.CollectionBudgets, adapter.ChangeDelete, budget.ID,
		func(ctx context.Context) error {
			return uc.budgetRepo.Delete(ctx, budget.ID)
		})
}
