// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// ReceivableModel represents the receivables table in the database.
type ReceivableModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DebtorName    string          `gorm:"type:varchar(255);not null"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DueDate       time.Time       `gorm:"type:date;not null;index"`
	Status        string          `gorm:"type:varchar(10);not null;default:'unpaid'"`
	Description   string          `gorm:"type:varchar(255)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ReceivableModel.
func (ReceivableModel) TableName() string {
	return "receivables"
}

// ToEntity converts a ReceivableModel to a domain Receivable entity.
func (m *ReceivableModel) ToEntity() *entity.Receivable {
	return &entity.Receivable{
		ID:            m.ID,
		AccountID:     m.AccountID,
		DebtorName:    m.DebtorName,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		DueDate:       m.DueDate,
		Status:        entity.ReceivableStatus(m.Status),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ReceivableFromEntity creates a ReceivableModel from a domain Receivable entity.
func ReceivableFromEntity(receivable *entity.Receivable) *ReceivableModel {
	return &ReceivableModel{
		ID:            receivable.ID,
		AccountID:     receivable.AccountID,
		DebtorName:    receivable.DebtorName,
		TargetAmount:  receivable.TargetAmount,
		CurrentAmount: receivable.CurrentAmount,
		DueDate:       receivable.DueDate,
		Status:        string(receivable.Status),
		Description:   receivable.Description,
		CreatedAt:     receivable.CreatedAt,
		UpdatedAt:     receivable.UpdatedAt,
	}
}
