// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountRole represents the role of an account.
type AccountRole string

const (
	AccountRoleUser  AccountRole = "user"
	AccountRoleAdmin AccountRole = "admin"
)

// Theme represents the account's UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Account represents a registered user in the DuitKu system.
type Account struct {
	ID        uuid.UUID
	Email     string
	Name      string
	PinDigest string // Empty when no PIN has been configured
	Role      AccountRole
	Currency  string
	Theme     Theme
	Protected bool // Protected accounts cannot be deleted by admins
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account with default values.
func NewAccount(email, name string, role AccountRole) *Account {
	now := time.Now().UTC()
	return &Account{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		Role:      role,
		Currency:  "IDR",
		Theme:     ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// HasPin reports whether a PIN has been configured for the account.
func (a *Account) HasPin() bool {
	return a.PinDigest != ""
}

// IsAdmin reports whether the account holds the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == AccountRoleAdmin
}

// AccountListResult represents the result of listing accounts with pagination.
type AccountListResult struct {
	Accounts   []*Account
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
