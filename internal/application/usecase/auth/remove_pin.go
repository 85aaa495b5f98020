// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// RemovePinInput represents the input for removing a PIN.
type RemovePinInput struct {
	AccountID uuid.UUID
}

// RemovePinOutput represents the output of removing a PIN.
type RemovePinOutput struct {
	Message string
}

// RemovePinUseCase clears the stored PIN digest via the gateway. The account
// cannot log in again until an admin configures a new PIN.
type RemovePinUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewRemovePinUseCase creates a new RemovePinUseCase instance.
func NewRemovePinUseCase(accountRepo adapter.AccountRepository) *RemovePinUseCase {
	return &RemovePinUseCase{accountRepo: accountRepo}
}

// Execute performs the PIN removal.
func (uc *RemovePinUseCase) Execute(ctx context.Context, input RemovePinInput) (*RemovePinOutput, error) {
	if err := uc.accountRepo.UpdatePinDigest(ctx, input.AccountID, ""); err != nil {
		return nil, domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayWrite,
			"failed to remove the PIN",
			err,
		)
	}
	return &RemovePinOutput{Message: "PIN removed"}, nil
}
