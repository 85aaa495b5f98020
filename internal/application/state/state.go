// Package state holds the in-memory application workspace for one account
// and the single-writer store that owns it.
package state

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/domain/entity"
)

// PageID identifies a UI page. Unknown ids fall back to PageDashboard.
type PageID string

const (
	PageDashboard    PageID = "dashboard"
	PageTransactions PageID = "transactions"
	PageBudgets      PageID = "budgets"
	PageGoals        PageID = "goals"
	PageReceivables  PageID = "receivables"
	PageProfile      PageID = "profile"
	PageAdmin        PageID = "admin"
)

var knownPages = map[PageID]bool{
	PageDashboard:    true,
	PageTransactions: true,
	PageBudgets:      true,
	PageGoals:        true,
	PageReceivables:  true,
	PageProfile:      true,
	PageAdmin:        true,
}

// KnownPage reports whether id is a member of the page enumeration.
func KnownPage(id PageID) bool {
	return knownPages[id]
}

// Cursor holds server-side pagination state for the transaction list.
type Cursor struct {
	Page       int
	PerPage    int
	TotalCount int64
}

// TotalPages returns the number of pages at the current size.
func (c Cursor) TotalPages() int {
	return paging.TotalPages(c.TotalCount, c.PerPage)
}

// Filter holds the active client-side transaction filter.
type Filter struct {
	Type  paging.TypeFilter
	Query string
}

// DateRange holds the server-side date-range bounds for transaction fetches.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Summary holds the derived income/expense totals for the loaded range.
type Summary struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}

// Workspace is the application state for one authenticated account: the
// account snapshot, the loaded collection slices, pagination cursors, filter
// selections and UI-mode flags. It is a value type; Store.Snapshot returns
// deep copies so readers never alias store-owned slices.
type Workspace struct {
	Account      *entity.Account
	Transactions []*entity.Transaction
	Budgets      []*entity.BudgetWithConsumed
	Goals        []*entity.Goal
	Receivables  []*entity.Receivable
	Summary      Summary
	Cursor       Cursor
	Filter       Filter
	DateRange    DateRange
	CurrentPage  PageID
	ActiveModal  string
	Loading      bool
}

// FilteredTransactions applies the active client-side filter to the loaded
// transaction page.
func (w Workspace) FilteredTransactions() []*entity.Transaction {
	return paging.Apply(w.Transactions, w.Filter.Type, w.Filter.Query)
}

// initialWorkspace returns the state every session starts from and returns
// to on logout.
func initialWorkspace() Workspace {
	return Workspace{
		Cursor:      Cursor{Page: 1, PerPage: paging.DefaultPerPage},
		Filter:      Filter{Type: paging.TypeFilterAll},
		CurrentPage: PageDashboard,
	}
}
