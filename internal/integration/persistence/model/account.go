// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name      string    `gorm:"type:varchar(255);not null"`
	PinDigest string    `gorm:"type:varchar(128)"`
	Role      string    `gorm:"type:varchar(10);not null;default:'user'"`
	Currency  string    `gorm:"type:varchar(5);not null;default:'IDR'"`
	Theme     string    `gorm:"type:varchar(10);not null;default:'light'"`
	Protected bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		PinDigest: m.PinDigest,
		Role:      entity.AccountRole(m.Role),
		Currency:  m.Currency,
		Theme:     entity.Theme(m.Theme),
		Protected: m.Protected,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		PinDigest: account.PinDigest,
		Role:      string(account.Role),
		Currency:  account.Currency,
		Theme:     string(account.Theme),
		Protected: account.Protected,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
