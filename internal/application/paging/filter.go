package paging

import (
	"strings"

	"github.com/duitku/backend/internal/domain/entity"
)

// TypeFilter restricts the loaded transaction page by transaction type.
type TypeFilter string

const (
	TypeFilterAll     TypeFilter = "all"
	TypeFilterIncome  TypeFilter = "income"
	TypeFilterExpense TypeFilter = "expense"
)

// Valid reports whether the filter value is known.
func (f TypeFilter) Valid() bool {
	return f == TypeFilterAll || f == TypeFilterIncome || f == TypeFilterExpense
}

// matchesType reports whether the transaction passes the type filter.
func matchesType(txn *entity.Transaction, filter TypeFilter) bool {
	switch filter {
	case TypeFilterIncome:
		return txn.Type == entity.TransactionTypeIncome
	case TypeFilterExpense:
		return txn.Type == entity.TransactionTypeExpense
	default:
		return true
	}
}

// matchesQuery reports whether the free-text query matches the transaction's
// description, category, amount-as-string or date strings, case-insensitively.
func matchesQuery(txn *entity.Transaction, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	haystacks := []string{
		txn.Description,
		txn.Category,
		txn.Amount.String(),
		txn.Date.Format("2006-01-02"),
		txn.Date.Format("2 January 2006"),
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), q) {
			return true
		}
	}
	return false
}

// Apply filters the already-loaded transaction page by type and free-text
// query. The two filters compose with logical AND and are independent of the
// server-side date-range filter. The input slice is not modified.
func Apply(txns []*entity.Transaction, filter TypeFilter, query string) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(txns))
	for _, txn := range txns {
		if matchesType(txn, filter) && matchesQuery(txn, query) {
			out = append(out, txn)
		}
	}
	return out
}
