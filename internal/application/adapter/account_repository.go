// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// AccountPagination defines pagination options for account listings.
type AccountPagination struct {
	Page  int
	Limit int
}

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the backend.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account by its unique email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// List retrieves one page of accounts ordered by creation time.
	List(ctx context.Context, pagination AccountPagination) (*entity.AccountListResult, error)

	// Update updates an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// UpdatePinDigest persists a new PIN digest for the account. An empty
	// digest removes the PIN.
	UpdatePinDigest(ctx context.Context, id uuid.UUID, digest string) error

	// Delete removes an account. Protected accounts must be rejected by the
	// caller before reaching the repository.
	Delete(ctx context.Context, id uuid.UUID) error
}
