// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// CategorySavings is the expense category used for goal funding transactions.
const CategorySavings = "Tabungan"

// CategoryOther is the fallback category present in both category sets.
const CategoryOther = "Lainnya"

// ExpenseCategories is the fixed category set for expense transactions.
var ExpenseCategories = []string{
	"Makanan",
	"Transportasi",
	"Belanja",
	"Tagihan",
	"Hiburan",
	"Kesehatan",
	"Pendidikan",
	CategorySavings,
	CategoryOther,
}

// IncomeCategories is the fixed category set for income transactions.
var IncomeCategories = []string{
	"Gaji",
	"Bonus",
	"Investasi",
	"Hadiah",
	CategoryOther,
}

// CategoriesForType returns the category set matching the transaction type.
func CategoriesForType(t TransactionType) []string {
	if t == TransactionTypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidCategory reports whether category belongs to the set matching t.
func ValidCategory(t TransactionType, category string) bool {
	for _, c := range CategoriesForType(t) {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction represents a single income or expense record.
// Amounts are whole rupiah; display scaling is a presentation concern.
type Transaction struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal // Always positive; sign is carried by Type
	Category    string
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	accountID uuid.UUID,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionListResult represents one page of transactions.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionSummary represents aggregated totals over a date range.
type TransactionSummary struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal // IncomeTotal - ExpenseTotal
}
