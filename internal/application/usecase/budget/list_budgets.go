package budget

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	AccountID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithConsumed
}

// ListBudgetsUseCase retrieves an account's budgets with consumption.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, transactionRepo adapter.TransactionRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists the account's budgets and derives each one's consumed amount
// from the expense transactions inside the current period window.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	result := make([]*entity.BudgetWithConsumed, 0, len(budgets))
	for _, b := range budgets {
		start, end := b.PeriodWindow(now)
		consumed, err := uc.transactionRepo.SumExpensesByCategory(ctx, input.AccountID, b.Category, start, end)
		if err != nil {
			return nil, err
		}
		result = append(result, &entity.BudgetWithConsumed{Budget: b, Consumed: consumed})
	}

	return &ListBudgetsOutput{Budgets: result}, nil
}
