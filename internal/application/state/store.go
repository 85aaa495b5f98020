package state

import (
	"sync"

	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/domain/entity"
)

// Store is the single writer of a Workspace. All mutation goes through
// named transition methods behind one mutex; view code never writes fields
// directly and reads only through Snapshot.
type Store struct {
	mu sync.Mutex
	ws Workspace
}

// NewStore creates a store holding the initial workspace.
func NewStore() *Store {
	return &Store{ws: initialWorkspace()}
}

// Snapshot returns a deep copy of the current workspace.
func (s *Store) Snapshot() Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyWorkspace()
}

func (s *Store) copyWorkspace() Workspace {
	ws := s.ws
	if ws.Account != nil {
		account := *ws.Account
		ws.Account = &account
	}
	ws.Transactions = copySlice(s.ws.Transactions)
	ws.Budgets = copySlice(s.ws.Budgets)
	ws.Goals = copySlice(s.ws.Goals)
	ws.Receivables = copySlice(s.ws.Receivables)
	return ws
}

func copySlice[T any](in []*T) []*T {
	if in == nil {
		return nil
	}
	out := make([]*T, len(in))
	for i, v := range in {
		c := *v
		out[i] = &c
	}
	return out
}

// SetAccount transitions the store to the authenticated state. Exactly one
// of {no account, authenticated account} holds at any time.
func (s *Store) SetAccount(account *entity.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := *account
	s.ws.Account = &snapshot
	if account.IsAdmin() {
		s.ws.CurrentPage = PageAdmin
	} else {
		s.ws.CurrentPage = PageDashboard
	}
}

// Reset returns the workspace to its initial values. Called on logout;
// calling it repeatedly yields the same end state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws = initialWorkspace()
}

// CollectionUpdate is the atomically-applied result of a successful reload.
type CollectionUpdate struct {
	Transactions []*entity.Transaction
	TotalCount   int64
	Budgets      []*entity.BudgetWithConsumed
	Goals        []*entity.Goal
	Receivables  []*entity.Receivable
	Summary      Summary
}

// ReplaceCollections atomically replaces every collection slice and the
// derived summary. The pagination cursor is clamped so that
// page <= max(1, totalPages) keeps holding after the total count changes.
func (s *Store) ReplaceCollections(update CollectionUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws.Transactions = update.Transactions
	s.ws.Budgets = update.Budgets
	s.ws.Goals = update.Goals
	s.ws.Receivables = update.Receivables
	s.ws.Summary = update.Summary
	s.ws.Cursor.TotalCount = update.TotalCount
	if max := s.ws.Cursor.TotalPages(); max > 0 && s.ws.Cursor.Page > max {
		s.ws.Cursor.Page = max
	}
	if s.ws.Cursor.Page < 1 {
		s.ws.Cursor.Page = 1
	}
	s.ws.Loading = false
}

// Navigate switches the current page. Unknown page ids fall back to the
// dashboard.
func (s *Store) Navigate(page PageID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !KnownPage(page) {
		page = PageDashboard
	}
	s.ws.CurrentPage = page
}

// GoToPage moves the pagination cursor. Requests outside [1, totalPages]
// are a no-op; the return value reports whether the cursor moved.
func (s *Store) GoToPage(page int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !paging.InRange(page, s.ws.Cursor.TotalCount, s.ws.Cursor.PerPage) {
		return false
	}
	s.ws.Cursor.Page = page
	return true
}

// SetPerPage changes the page size and resets to the first page.
func (s *Store) SetPerPage(perPage int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, perPage = paging.Normalize(1, perPage)
	s.ws.Cursor.PerPage = perPage
	s.ws.Cursor.Page = 1
}

// SetFilter replaces the client-side transaction filter. Unknown type
// filters fall back to "all".
func (s *Store) SetFilter(filter Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !filter.Type.Valid() {
		filter.Type = paging.TypeFilterAll
	}
	s.ws.Filter = filter
}

// SetDateRange replaces the server-side date-range bounds and resets the
// cursor to the first page.
func (s *Store) SetDateRange(dateRange DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws.DateRange = dateRange
	s.ws.Cursor.Page = 1
}

// SetLoading flips the loading indicator shown while a reload is in flight.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws.Loading = loading
}

// OpenModal records the visible modal id; CloseModal clears it.
func (s *Store) OpenModal(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws.ActiveModal = id
}

// CloseModal clears the visible modal id.
func (s *Store) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ws.ActiveModal = ""
}
