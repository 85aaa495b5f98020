// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// ProvisionAccountInput represents the input for admin account provisioning.
type ProvisionAccountInput struct {
	ActorRole  entity.AccountRole
	Email      string
	Name       string
	Role       entity.AccountRole
	InitialPin string // Optional; when empty the account starts PinNotConfigured
}

// ProvisionAccountOutput represents the output of account provisioning.
type ProvisionAccountOutput struct {
	Account *entity.Account
}

// ProvisionAccountUseCase creates a new account. Only admins may provision;
// a welcome email is sent when a sender is configured.
type ProvisionAccountUseCase struct {
	accountRepo adapter.AccountRepository
	pinService  adapter.PinService
	emailSender adapter.EmailSender
}

// NewProvisionAccountUseCase creates a new ProvisionAccountUseCase instance.
func NewProvisionAccountUseCase(
	accountRepo adapter.AccountRepository,
	pinService adapter.PinService,
	emailSender adapter.EmailSender,
) *ProvisionAccountUseCase {
	return &ProvisionAccountUseCase{
		accountRepo: accountRepo,
		pinService:  pinService,
		emailSender: emailSender,
	}
}

// Execute performs the provisioning.
func (uc *ProvisionAccountUseCase) Execute(ctx context.Context, input ProvisionAccountInput) (*ProvisionAccountOutput, error) {
	if input.ActorRole != entity.AccountRoleAdmin {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotAdmin,
			"only administrators can provision accounts",
			domainerror.ErrNotAdmin,
		)
	}
	if input.Email == "" || input.Name == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingFields,
			"email and name are required",
			nil,
		)
	}
	existing, err := uc.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayRead,
			"failed to look up account",
			err,
		)
	}
	if existing != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"an account with this email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	role := input.Role
	if role != entity.AccountRoleAdmin {
		role = entity.AccountRoleUser
	}
	account := entity.NewAccount(input.Email, input.Name, role)

	if input.InitialPin != "" {
		if err := uc.pinService.ValidatePinFormat(input.InitialPin); err != nil {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidPinFormat,
				"PIN must be a short numeric code",
				domainerror.ErrInvalidPinFormat,
			)
		}
		digest, err := uc.pinService.HashPin(input.InitialPin, account.ID.String())
		if err != nil {
			return nil, err
		}
		account.PinDigest = digest
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	uc.sendWelcomeEmail(ctx, account)

	slog.Info("Account provisioned",
		"accountID", account.ID,
		"role", account.Role,
	)
	return &ProvisionAccountOutput{Account: account}, nil
}

// sendWelcomeEmail sends the welcome mail. Delivery failure does not fail
// the provisioning; it is logged and the admin can resend manually.
func (uc *ProvisionAccountUseCase) sendWelcomeEmail(ctx context.Context, account *entity.Account) {
	if uc.emailSender == nil {
		return
	}
	input := adapter.SendEmailInput{
		To:      account.Email,
		Subject: "Selamat datang di DuitKu",
		Text: fmt.Sprintf(
			"Halo %s,\n\nAkun DuitKu kamu sudah dibuat. Masuk dengan email ini dan PIN yang diberikan administrator.\n",
			account.Name,
		),
	}
	if _, err := uc.emailSender.Send(ctx, input); err != nil {
		slog.Warn("Failed to send welcome email",
			"accountID", account.ID,
			"error", err,
		)
	}
}
