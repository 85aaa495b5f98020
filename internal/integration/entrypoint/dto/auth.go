package dto

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Pin   string `json:"pin"`
}

// LoginResponse represents the response for login. When the account has a
// PIN configured and none was supplied, pin_required is true and the token
// is absent.
type LoginResponse struct {
	PinRequired bool            `json:"pin_required"`
	AccessToken string          `json:"access_token,omitempty"`
	Account     *AccountPayload `json:"account,omitempty"`
}

// SetPinRequest represents the request body for configuring a PIN.
type SetPinRequest struct {
	NewPin       string `json:"new_pin" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

// ProvisionAccountRequest represents the request body for provisioning an account.
type ProvisionAccountRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name" binding:"required,min=1,max=100"`
	Role       string `json:"role"`
	InitialPin string `json:"initial_pin"`
}

// ResumeSessionResponse represents the response for resuming a session.
type ResumeSessionResponse struct {
	Resumed     bool            `json:"resumed"`
	AccessToken string          `json:"access_token,omitempty"`
	Account     *AccountPayload `json:"account,omitempty"`
}

// AccountPayload represents an account in API responses.
type AccountPayload struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Currency  string    `json:"currency"`
	Theme     string    `json:"theme"`
	HasPin    bool      `json:"has_pin"`
	Protected bool      `json:"protected"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAccountPayload converts an account entity to its API representation.
// The PIN digest never leaves the server.
func ToAccountPayload(account *entity.Account) *AccountPayload {
	if account == nil {
		return nil
	}
	return &AccountPayload{
		ID:        account.ID.String(),
		Email:     account.Email,
		Name:      account.Name,
		Role:      string(account.Role),
		Currency:  account.Currency,
		Theme:     string(account.Theme),
		HasPin:    account.HasPin(),
		Protected: account.Protected,
		CreatedAt: account.CreatedAt,
	}
}
