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

// UpdateBudgetInput represents the input for budget updates.
type UpdateBudgetInput struct {
	AccountID   uuid.UUID
	BudgetID    uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
	Period      entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	workspaces *appsync.Manager
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, workspaces *appsync.Manager) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		workspaces: workspaces,
	}
}

// Execute performs the budget update via write-then-reload.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if err := validateFields(input.Category, input.Amount, input.Period); err != nil {
		return nil, err
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

	budget.Category = input.Category
	budget.Amount = input.Amount
	budget.Description = input.Description
	budget.Period = input.Period
	budget.UpdatedAt = time.Now().UTC()

	engine := uc.workspaces.Engine(input.AccountID)
	err = engine.Mutate(ctx, adapter.CollectionBudgets, adapter.ChangeUpdate, budget.ID,
		func(ctx context.Context) error {
			return uc.budgetRepo.Update(ctx, budget)
		})
	if err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
