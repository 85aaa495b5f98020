// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	AccountID uuid.UUID
	Email     string
	Role      entity.AccountRole
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the account.
	GenerateAccessToken(ctx context.Context, account *entity.Account) (string, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
