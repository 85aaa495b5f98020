// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
)

// LogoutInput represents the input for logout.
type LogoutInput struct {
	AccountID uuid.UUID
}

// LogoutOutput represents the output of logout.
type LogoutOutput struct {
	Message string
}

// LogoutUseCase releases realtime subscriptions, clears the persisted
// session and resets the application state. Logging out twice in a row
// produces the same end state as once.
type LogoutUseCase struct {
	sessionStore adapter.SessionStore
	workspaces   *appsync.Manager
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(sessionStore adapter.SessionStore, workspaces *appsync.Manager) *LogoutUseCase {
	return &LogoutUseCase{
		sessionStore: sessionStore,
		workspaces:   workspaces,
	}
}

// Execute performs the logout. Subscriptions are released before the session
// record is cleared so no listener is left bound to a stale account id.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) (*LogoutOutput, error) {
	uc.workspaces.Release(input.AccountID)

	if err := uc.sessionStore.Delete(ctx, input.AccountID); err != nil {
		// The workspace is already torn down; report but don't fail logout.
		slog.Warn("Failed to clear persisted session",
			"accountID", input.AccountID,
			"error", err,
		)
	}

	return &LogoutOutput{Message: "Successfully logged out"}, nil
}
