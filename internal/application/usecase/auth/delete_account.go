// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for admin account deletion.
type DeleteAccountInput struct {
	ActorRole entity.AccountRole
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Message string
}

// DeleteAccountUseCase removes an account and its session. Owners never
// delete themselves; only admins delete, and protected default accounts are
// excluded.
type DeleteAccountUseCase struct {
	accountRepo  adapter.AccountRepository
	sessionStore adapter.SessionStore
	workspaces   *appsync.Manager
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	accountRepo adapter.AccountRepository,
	sessionStore adapter.SessionStore,
	workspaces *appsync.Manager,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:  accountRepo,
		sessionStore: sessionStore,
		workspaces:   workspaces,
	}
}

// Execute performs the deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if input.ActorRole != entity.AccountRoleAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotAdmin,
			"only administrators can delete accounts",
			domainerror.ErrNotAdmin,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayRead,
			"failed to look up account",
			err,
		)
	}
	if account == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUnknownAccount,
			"account not found",
			domainerror.ErrUnknownAccount,
		)
	}
	if account.Protected {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountProtected,
			"this account is protected and cannot be deleted",
			domainerror.ErrAccountProtected,
		)
	}

	// Tear down any live workspace and session before the record goes away.
	uc.workspaces.Release(account.ID)
	if err := uc.sessionStore.Delete(ctx, account.ID); err != nil {
		slog.Warn("Failed to clear session of deleted account",
			"accountID", account.ID,
			"error", err,
		)
	}

	if err := uc.accountRepo.Delete(ctx, account.ID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	slog.Info("Account deleted", "accountID", account.ID)
	return &DeleteAccountOutput{Message: "Account deleted"}, nil
}
