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

// ResumeSessionInput represents the input for resuming a persisted session.
type ResumeSessionInput struct {
	AccountID uuid.UUID
}

// ResumeSessionOutput represents the output of resuming a session.
type ResumeSessionOutput struct {
	Resumed     bool
	AccessToken string
	Account     *entity.Account
}

// ResumeSessionUseCase restores a session from its persisted snapshot at
// startup. The account is re-read from the backend so the session never
// resurrects stale profile data.
type ResumeSessionUseCase struct {
	accountRepo  adapter.AccountRepository
	tokenService adapter.TokenService
	sessionStore adapter.SessionStore
	workspaces   *appsync.Manager
}

// NewResumeSessionUseCase creates a new ResumeSessionUseCase instance.
func NewResumeSessionUseCase(
	accountRepo adapter.AccountRepository,
	tokenService adapter.TokenService,
	sessionStore adapter.SessionStore,
	workspaces *appsync.Manager,
) *ResumeSessionUseCase {
	return &ResumeSessionUseCase{
		accountRepo:  accountRepo,
		tokenService: tokenService,
		sessionStore: sessionStore,
		workspaces:   workspaces,
	}
}

// Execute attempts the resume. A missing session yields Resumed=false, not
// an error.
func (uc *ResumeSessionUseCase) Execute(ctx context.Context, input ResumeSessionInput) (*ResumeSessionOutput, error) {
	session, err := uc.sessionStore.Load(ctx, input.AccountID)
	if err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeSessionStorage,
			"failed to read persisted session",
			err,
		)
	}
	if session == nil {
		return &ResumeSessionOutput{Resumed: false}, nil
	}

	account, err := uc.accountRepo.FindByID(ctx, session.Account.ID)
	if err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayRead,
			"failed to look up account",
			err,
		)
	}
	if account == nil {
		// The account is gone; drop the orphaned session record.
		if delErr := uc.sessionStore.Delete(ctx, input.AccountID); delErr != nil {
			slog.Warn("Failed to drop orphaned session", "accountID", input.AccountID, "error", delErr)
		}
		return &ResumeSessionOutput{Resumed: false}, nil
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if _, err := uc.workspaces.Open(ctx, account); err != nil {
		return nil, err
	}

	return &ResumeSessionOutput{
		Resumed:     true,
		AccessToken: token,
		Account:     account,
	}, nil
}
