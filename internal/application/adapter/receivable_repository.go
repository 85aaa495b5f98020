// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// ReceivableRepository defines the interface for receivable persistence operations.
type ReceivableRepository interface {
	// Create creates a new receivable in the backend.
	Create(ctx context.Context, receivable *entity.Receivable) error

	// FindByID retrieves a receivable by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Receivable, error)

	// FindByAccount retrieves all receivables for an account ordered by due
	// date ascending.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Receivable, error)

	// Update updates an existing receivable.
	Update(ctx context.Context, receivable *entity.Receivable) error

	// Delete removes a receivable.
	Delete(ctx context.Context, id uuid.UUID) error
}
