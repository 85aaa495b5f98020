// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the backend.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByAccount retrieves all budgets for an account, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Budget, error)

	// Update updates an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget.
	Delete(ctx context.Context, id uuid.UUID) error
}
