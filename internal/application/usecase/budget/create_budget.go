// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	AccountID   uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
	Period      entity.BudgetPeriod
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	workspaces *appsync.Manager
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, workspaces *appsync.Manager) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		workspaces: workspaces,
	}
}

// Execute performs the budget creation via write-then-reload.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateFields(input.Category, input.Amount, input.Period); err != nil {
		return nil, err
	}

	budget := entity.NewBudget(input.AccountID, input.Category, input.Amount, input.Description, input.Period)

	engine := uc.workspaces.Engine(input.AccountID)
	err := engine.Mutate(ctx, adapter.CollectionBudgets, adapter.ChangeInsert, budget.ID,
		func(ctx context.Context) error {
			return uc.budgetRepo.Create(ctx, budget)
		})
	if err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}

// validateFields checks the invariants shared by budget create and update.
func validateFields(category string, amount decimal.Decimal, period entity.BudgetPeriod) error {
	if !entity.ValidCategory(entity.TransactionTypeExpense, category) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"budget category must be an expense category",
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"allocated amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}
	switch period {
	case entity.BudgetPeriodWeekly, entity.BudgetPeriodMonthly, entity.BudgetPeriodYearly:
		return nil
	default:
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be weekly, monthly or yearly",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
}
