// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create creates a new goal in the backend.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByAccount retrieves all goals for an account, newest first.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal.
	Delete(ctx context.Context, id uuid.UUID) error
}
