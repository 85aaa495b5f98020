// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// LoginInput represents the input for login. Pin is empty on the first
// attempt; the caller is told to prompt when the account has one configured.
type LoginInput struct {
	Email string
	Pin   string
}

// LoginOutput represents the output of login.
type LoginOutput struct {
	// PinRequired is set instead of the token when the account has a PIN
	// configured and none was supplied. The caller should prompt and retry.
	PinRequired bool

	AccessToken string
	Account     *entity.Account
}

// LoginUseCase handles the login state machine: unknown account, PIN not
// configured, awaiting PIN, invalid PIN, authenticated.
type LoginUseCase struct {
	accountRepo  adapter.AccountRepository
	pinService   adapter.PinService
	tokenService adapter.TokenService
	sessionStore adapter.SessionStore
	workspaces   *appsync.Manager
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	accountRepo adapter.AccountRepository,
	pinService adapter.PinService,
	tokenService adapter.TokenService,
	sessionStore adapter.SessionStore,
	workspaces *appsync.Manager,
) *LoginUseCase {
	return &LoginUseCase{
		accountRepo:  accountRepo,
		pinService:   pinService,
		tokenService: tokenService,
		sessionStore: sessionStore,
		workspaces:   workspaces,
	}
}

// Execute performs the login. Authentication failures are returned as typed
// results so field-level messages can be rendered; session state is only
// mutated on success.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	account, err := uc.accountRepo.FindByEmail(ctx, input.Email)
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
			"no account exists for this email",
			domainerror.ErrUnknownAccount,
		)
	}

	if !account.HasPin() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePinNotConfigured,
			"no PIN is configured for this account, contact an administrator",
			domainerror.ErrPinNotConfigured,
		)
	}

	if input.Pin == "" {
		// Awaiting PIN: signal the caller to prompt. Not an error and not a
		// state transition.
		return &LoginOutput{PinRequired: true}, nil
	}

	if err := uc.pinService.VerifyPin(account.PinDigest, input.Pin, account.ID.String()); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPin,
			"incorrect PIN",
			domainerror.ErrInvalidPin,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	if err := uc.sessionStore.Save(ctx, entity.NewSession(account)); err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeSessionStorage,
			"failed to persist session",
			err,
		)
	}

	// Full data load, realtime subscriptions and routing (admins land on the
	// admin page) happen inside the workspace manager.
	if _, err := uc.workspaces.Open(ctx, account); err != nil {
		return nil, err
	}

	slog.Info("Account logged in",
		"accountID", account.ID,
		"role", account.Role,
	)

	return &LoginOutput{
		AccessToken: token,
		Account:     account,
	}, nil
}
