// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for descriptions.
const MaxDescriptionLength = 255

// validateFields checks the invariants shared by create and update:
// amount > 0, type in {income, expense}, category in the set matching the
// type, and a usable date.
func validateFields(transactionType entity.TransactionType, amount decimal.Decimal, category string, date time.Time) error {
	if transactionType != entity.TransactionTypeIncome && transactionType != entity.TransactionTypeExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.ValidCategory(transactionType, category) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionCategory,
			"category does not belong to this transaction type",
			domainerror.ErrInvalidTransactionCategory,
		)
	}
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"a transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}

// findOwnedTransaction loads a transaction and checks it belongs to the
// acting account. A missing row surfaces as not-found, never as a nil
// dereference.
func findOwnedTransaction(ctx context.Context, repo adapter.TransactionRepository, accountID, transactionID uuid.UUID) (*entity.Transaction, error) {
	txn, err := repo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if txn.AccountID != accountID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"transaction does not belong to this account",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}
	return txn, nil
}
