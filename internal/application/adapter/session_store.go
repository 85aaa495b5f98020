// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// SessionStore persists a serialized account snapshot under a well-known
// per-account key so a session can survive a client restart. It is removed
// on logout.
type SessionStore interface {
	// Save persists the session snapshot.
	Save(ctx context.Context, session *entity.Session) error

	// Load reads the session for an account. Returns (nil, nil) when no
	// session is stored.
	Load(ctx context.Context, accountID uuid.UUID) (*entity.Session, error)

	// Delete removes the stored session. Deleting an absent session is not
	// an error.
	Delete(ctx context.Context, accountID uuid.UUID) error
}
