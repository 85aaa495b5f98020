// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"
)

// Session mirrors the authenticated account so a client can resume after a
// restart. It is persisted under a well-known per-account key and removed on
// logout.
type Session struct {
	Account  *Account
	IssuedAt time.Time
}

// NewSession creates a session snapshot for the given account.
func NewSession(account *Account) *Session {
	return &Session{
		Account:  account,
		IssuedAt: time.Now().UTC(),
	}
}
