// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// SetPinInput represents the input for setting or rotating a PIN.
type SetPinInput struct {
	AccountID    uuid.UUID
	NewPin       string
	Confirmation string
}

// SetPinOutput represents the output of setting a PIN.
type SetPinOutput struct {
	Message string
}

// SetPinUseCase computes a new PIN digest and persists it via the gateway.
// On gateway failure the local session is not changed speculatively; the
// next reload reflects actual backend state.
type SetPinUseCase struct {
	accountRepo adapter.AccountRepository
	pinService  adapter.PinService
}

// NewSetPinUseCase creates a new SetPinUseCase instance.
func NewSetPinUseCase(accountRepo adapter.AccountRepository, pinService adapter.PinService) *SetPinUseCase {
	return &SetPinUseCase{
		accountRepo: accountRepo,
		pinService:  pinService,
	}
}

// Execute performs the PIN update.
func (uc *SetPinUseCase) Execute(ctx context.Context, input SetPinInput) (*SetPinOutput, error) {
	if err := uc.pinService.ValidatePinFormat(input.NewPin); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPinFormat,
			"PIN must be a short numeric code",
			domainerror.ErrInvalidPinFormat,
		)
	}
	if input.NewPin != input.Confirmation {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePinMismatch,
			"PIN confirmation does not match",
			domainerror.ErrPinConfirmationMismatch,
		)
	}

	digest, err := uc.pinService.HashPin(input.NewPin, input.AccountID.String())
	if err != nil {
		return nil, err
	}

	if err := uc.accountRepo.UpdatePinDigest(ctx, input.AccountID, digest); err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayWrite,
			"failed to save the new PIN",
			err,
		)
	}

	return &SetPinOutput{Message: "PIN updated"}, nil
}
