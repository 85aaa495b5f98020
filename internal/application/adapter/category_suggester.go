// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/duitku/backend/internal/domain/entity"
)

// CategorySuggester proposes a category from the fixed set matching the
// transaction type, based on a free-text description. Used during bulk
// import when a row carries an unknown category. Implementations must
// return a member of entity.CategoriesForType(transactionType).
type CategorySuggester interface {
	SuggestCategory(ctx context.Context, description string, transactionType entity.TransactionType) (string, error)
}
