package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/domain/entity"
)

func TestStoreInitialState(t *testing.T) {
	store := NewStore()
	ws := store.Snapshot()

	if ws.CurrentPage != PageDashboard {
		t.Errorf("expected initial page %q, got %q", PageDashboard, ws.CurrentPage)
	}
	if ws.Cursor.Page != 1 {
		t.Errorf("expected cursor page 1, got %d", ws.Cursor.Page)
	}
	if ws.Cursor.PerPage != paging.DefaultPerPage {
		t.Errorf("expected per page %d, got %d", paging.DefaultPerPage, ws.Cursor.PerPage)
	}
	if ws.Filter.Type != paging.TypeFilterAll {
		t.Errorf("expected filter %q, got %q", paging.TypeFilterAll, ws.Filter.Type)
	}
	if ws.Account != nil {
		t.Error("expected no account before authentication")
	}
}

func TestStoreSetAccount(t *testing.T) {
	t.Run("regular account lands on the dashboard", func(t *testing.T) {
		store := NewStore()
		store.SetAccount(&entity.Account{ID: uuid.New(), Role: entity.AccountRoleUser})

		ws := store.Snapshot()
		if ws.CurrentPage != PageDashboard {
			t.Errorf("expected page %q, got %q", PageDashboard, ws.CurrentPage)
		}
	})

	t.Run("admin account lands on the admin page", func(t *testing.T) {
		store := NewStore()
		store.SetAccount(&entity.Account{ID: uuid.New(), Role: entity.AccountRoleAdmin})

		ws := store.Snapshot()
		if ws.CurrentPage != PageAdmin {
			t.Errorf("expected page %q, got %q", PageAdmin, ws.CurrentPage)
		}
	})

	t.Run("store keeps its own copy of the account", func(t *testing.T) {
		store := NewStore()
		account := &entity.Account{ID: uuid.New(), Name: "Budi"}
		store.SetAccount(account)

		account.Name = "Diubah"
		if got := store.Snapshot().Account.Name; got != "Budi" {
			t.Errorf("expected stored name %q, got %q", "Budi", got)
		}
	})
}

func TestStoreSnapshotIsDeepCopy(t *testing.T) {
	store := NewStore()
	store.ReplaceCollections(CollectionUpdate{
		Transactions: []*entity.Transaction{
			{ID: uuid.New(), Description: "Nasi goreng"},
		},
		TotalCount: 1,
	})

	first := store.Snapshot()
	first.Transactions[0].Description = "Diubah"

	second := store.Snapshot()
	if second.Transactions[0].Description != "Nasi goreng" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestStoreReset(t *testing.T) {
	store := NewStore()
	store.SetAccount(&entity.Account{ID: uuid.New(), Role: entity.AccountRoleUser})
	store.Navigate(PageGoals)
	store.SetPerPage(50)

	store.Reset()
	store.Reset()

	ws := store.Snapshot()
	if ws.Account != nil {
		t.Error("expected no account after reset")
	}
	if ws.CurrentPage != PageDashboard {
		t.Errorf("expected page %q after reset, got %q", PageDashboard, ws.CurrentPage)
	}
	if ws.Cursor.PerPage != paging.DefaultPerPage {
		t.Errorf("expected per page %d after reset, got %d", paging.DefaultPerPage, ws.Cursor.PerPage)
	}
}

func TestStoreReplaceCollectionsClampsCursor(t *testing.T) {
	store := NewStore()
	store.ReplaceCollections(CollectionUpdate{TotalCount: 50})
	if !store.GoToPage(5) {
		t.Fatal("expected page 5 of 50 rows to be reachable")
	}

	// Shrinking the collection pulls the cursor back to the last page.
	store.ReplaceCollections(CollectionUpdate{TotalCount: 12})

	ws := store.Snapshot()
	if ws.Cursor.Page != 2 {
		t.Errorf("expected cursor clamped to page 2, got %d", ws.Cursor.Page)
	}
}

func TestStoreNavigate(t *testing.T) {
	store := NewStore()

	store.Navigate(PageReceivables)
	if got := store.Snapshot().CurrentPage; got != PageReceivables {
		t.Errorf("expected page %q, got %q", PageReceivables, got)
	}

	store.Navigate(PageID("laporan"))
	if got := store.Snapshot().CurrentPage; got != PageDashboard {
		t.Errorf("expected unknown page to fall back to %q, got %q", PageDashboard, got)
	}
}

func TestStoreGoToPage(t *testing.T) {
	store := NewStore()
	store.ReplaceCollections(CollectionUpdate{TotalCount: 25})

	t.Run("valid page moves the cursor", func(t *testing.T) {
		if !store.GoToPage(3) {
			t.Fatal("expected the cursor to move")
		}
		if got := store.Snapshot().Cursor.Page; got != 3 {
			t.Errorf("expected page 3, got %d", got)
		}
	})

	t.Run("page past the end is a no-op", func(t *testing.T) {
		if store.GoToPage(4) {
			t.Error("expected page 4 of 25 rows to be rejected")
		}
		if got := store.Snapshot().Cursor.Page; got != 3 {
			t.Errorf("expected cursor to stay on page 3, got %d", got)
		}
	})

	t.Run("page zero is a no-op", func(t *testing.T) {
		if store.GoToPage(0) {
			t.Error("expected page 0 to be rejected")
		}
	})
}

func TestStoreSetPerPage(t *testing.T) {
	store := NewStore()
	store.ReplaceCollections(CollectionUpdate{TotalCount: 100})
	store.GoToPage(5)

	store.SetPerPage(25)

	ws := store.Snapshot()
	if ws.Cursor.PerPage != 25 {
		t.Errorf("expected per page 25, got %d", ws.Cursor.PerPage)
	}
	if ws.Cursor.Page != 1 {
		t.Errorf("expected cursor reset to page 1, got %d", ws.Cursor.Page)
	}
}

func TestStoreSetFilter(t *testing.T) {
	store := NewStore()

	store.SetFilter(Filter{Type: paging.TypeFilterExpense, Query: "nasi"})
	ws := store.Snapshot()
	if ws.Filter.Type != paging.TypeFilterExpense || ws.Filter.Query != "nasi" {
		t.Errorf("unexpected filter %+v", ws.Filter)
	}

	store.SetFilter(Filter{Type: paging.TypeFilter("semua")})
	if got := store.Snapshot().Filter.Type; got != paging.TypeFilterAll {
		t.Errorf("expected unknown filter type to fall back to %q, got %q", paging.TypeFilterAll, got)
	}
}

func TestWorkspaceFilteredTransactions(t *testing.T) {
	store := NewStore()
	store.ReplaceCollections(CollectionUpdate{
		Transactions: []*entity.Transaction{
			{Type: entity.TransactionTypeIncome, Amount: decimal.NewFromInt(8000000), Category: "Gaji"},
			{Type: entity.TransactionTypeExpense, Amount: decimal.NewFromInt(50000), Category: "Makanan"},
		},
		TotalCount: 2,
	})
	store.SetFilter(Filter{Type: paging.TypeFilterExpense})

	filtered := store.Snapshot().FilteredTransactions()
	if len(filtered) != 1 {
		t.Fatalf("expected 1 filtered transaction, got %d", len(filtered))
	}
	if filtered[0].Category != "Makanan" {
		t.Errorf("unexpected transaction %q", filtered[0].Category)
	}
}
