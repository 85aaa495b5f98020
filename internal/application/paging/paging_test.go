package paging

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		perPage  int
		wantFrom int
		wantTo   int
	}{
		{"first page", 1, 10, 0, 9},
		{"second page", 2, 10, 10, 19},
		{"single row pages", 3, 1, 2, 2},
		{"large page size", 1, 100, 0, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := Window(tt.page, tt.perPage)
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("Window(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.perPage, from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name    string
		total   int64
		perPage int
		want    int
	}{
		{"empty collection", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"partial last page", 21, 10, 3},
		{"fewer rows than page size", 5, 10, 1},
		{"non-positive per page", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.total, tt.perPage); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.total, tt.perPage, got, tt.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	t.Run("page zero is never valid", func(t *testing.T) {
		if InRange(0, 100, 10) {
			t.Error("expected page 0 to be out of range")
		}
	})

	t.Run("last page is valid", func(t *testing.T) {
		if !InRange(3, 21, 10) {
			t.Error("expected page 3 of 21 rows at 10 per page to be in range")
		}
	})

	t.Run("page past the end is invalid", func(t *testing.T) {
		if InRange(4, 21, 10) {
			t.Error("expected page 4 of 21 rows at 10 per page to be out of range")
		}
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"valid inputs pass through", 2, 25, 2, 25},
		{"zero page clamps to one", 0, 25, 1, 25},
		{"negative page clamps to one", -3, 25, 1, 25},
		{"zero per page uses default", 1, 0, 1, DefaultPerPage},
		{"oversized per page caps at max", 1, 500, 1, MaxPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := Normalize(tt.page, tt.perPage)
			if page != tt.wantPage || perPage != tt.wantPerPage {
				t.Errorf("Normalize(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.perPage, page, perPage, tt.wantPage, tt.wantPerPage)
			}
		})
	}
}

func testTransaction(txnType entity.TransactionType, amount int64, category, description, date string) *entity.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return &entity.Transaction{
		Type:        txnType,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: description,
		Date:        d,
	}
}

func TestApply(t *testing.T) {
	txns := []*entity.Transaction{
		testTransaction(entity.TransactionTypeIncome, 8000000, "Gaji", "Gaji bulanan", "2026-08-01"),
		testTransaction(entity.TransactionTypeExpense, 50000, "Makanan", "Nasi goreng", "2026-08-10"),
		testTransaction(entity.TransactionTypeExpense, 25000, "Transportasi", "Ojek online", "2026-08-11"),
	}

	t.Run("all filter keeps everything", func(t *testing.T) {
		if got := Apply(txns, TypeFilterAll, ""); len(got) != 3 {
			t.Errorf("expected 3 transactions, got %d", len(got))
		}
	})

	t.Run("type filter keeps only matching entries", func(t *testing.T) {
		got := Apply(txns, TypeFilterIncome, "")
		if len(got) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(got))
		}
		if got[0].Type != entity.TransactionTypeIncome {
			t.Errorf("expected income transaction, got %s", got[0].Type)
		}
	})

	t.Run("query matches description case-insensitively", func(t *testing.T) {
		got := Apply(txns, TypeFilterAll, "NASI")
		if len(got) != 1 {
			t.Fatalf("expected 1 transaction, got %d", len(got))
		}
		if got[0].Description != "Nasi goreng" {
			t.Errorf("unexpected match %q", got[0].Description)
		}
	})

	t.Run("query matches category", func(t *testing.T) {
		if got := Apply(txns, TypeFilterAll, "transportasi"); len(got) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(got))
		}
	})

	t.Run("query matches amount digits", func(t *testing.T) {
		if got := Apply(txns, TypeFilterAll, "8000000"); len(got) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(got))
		}
	})

	t.Run("query matches formatted date", func(t *testing.T) {
		if got := Apply(txns, TypeFilterAll, "10 august"); len(got) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(got))
		}
	})

	t.Run("type and query compose with AND", func(t *testing.T) {
		if got := Apply(txns, TypeFilterIncome, "nasi"); len(got) != 0 {
			t.Errorf("expected no transactions, got %d", len(got))
		}
	})

	t.Run("input slice is not modified", func(t *testing.T) {
		before := len(txns)
		_ = Apply(txns, TypeFilterExpense, "")
		if len(txns) != before {
			t.Error("input slice length changed")
		}
	})
}

func TestTypeFilterValid(t *testing.T) {
	for _, f := range []TypeFilter{TypeFilterAll, TypeFilterIncome, TypeFilterExpense} {
		if !f.Valid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if TypeFilter("semua").Valid() {
		t.Error("expected unknown filter to be invalid")
	}
}
