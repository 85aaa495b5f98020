package portability

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// stubTransactionRepo records created transactions and serves them back
// through the read methods the reload path touches.
type stubTransactionRepo struct {
	created []*entity.Transaction
}

func (r *stubTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.created = append(r.created, txn)
	return nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *stubTransactionRepo) FindByFilter(_ context.Context, _ adapter.TransactionFilter, _ adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{
		Transactions: r.created,
		Total:        int64(len(r.created)),
	}, nil
}

func (r *stubTransactionRepo) GetSummary(_ context.Context, _ adapter.TransactionFilter) (*entity.TransactionSummary, error) {
	return &entity.TransactionSummary{}, nil
}

func (r *stubTransactionRepo) SumExpensesByCategory(_ context.Context, _ uuid.UUID, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *stubTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (r *stubTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error           { return nil }
func (r *stubTransactionRepo) DeleteByAccount(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type stubBudgetRepo struct{}

func (stubBudgetRepo) Create(_ context.Context, _ *entity.Budget) error { return nil }
func (stubBudgetRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}
func (stubBudgetRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}
func (stubBudgetRepo) Update(_ context.Context, _ *entity.Budget) error { return nil }
func (stubBudgetRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

type stubGoalRepo struct{}

func (stubGoalRepo) Create(_ context.Context, _ *entity.Goal) error { return nil }
func (stubGoalRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Goal, error) {
	return nil, domainerror.ErrGoalNotFound
}
func (stubGoalRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}
func (stubGoalRepo) Update(_ context.Context, _ *entity.Goal) error { return nil }
func (stubGoalRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

type stubReceivableRepo struct{}

func (stubReceivableRepo) Create(_ context.Context, _ *entity.Receivable) error { return nil }
func (stubReceivableRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Receivable, error) {
	return nil, domainerror.ErrReceivableNotFound
}
func (stubReceivableRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Receivable, error) {
	return nil, nil
}
func (stubReceivableRepo) Update(_ context.Context, _ *entity.Receivable) error { return nil }
func (stubReceivableRepo) Delete(_ context.Context, _ uuid.UUID) error          { return nil }

type fixedSuggester struct{ category string }

func (s fixedSuggester) SuggestCategory(_ context.Context, _ string, _ entity.TransactionType) (string, error) {
	return s.category, nil
}

func importFixture() (*stubTransactionRepo, *appsync.Manager) {
	repo := &stubTransactionRepo{}
	manager := appsync.NewManager(appsync.Gateways{
		Transactions: repo,
		Budgets:      stubBudgetRepo{},
		Goals:        stubGoalRepo{},
		Receivables:  stubReceivableRepo{},
	}, nil, nil)
	return repo, manager
}

func TestImportCSV(t *testing.T) {
	accountID := uuid.New()

	t.Run("valid rows import", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, nil, manager)

		data := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-08-10,expense,Makanan,50000,Nasi goreng",
			"2026-08-01,income,Gaji,8000000,Gaji bulanan",
		}, "\n")

		output, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Imported != 2 {
			t.Errorf("expected 2 imported, got %d", output.Imported)
		}
		if len(output.Skipped) != 0 {
			t.Errorf("expected no skipped rows, got %d", len(output.Skipped))
		}
		if len(repo.created) != 2 {
			t.Errorf("expected 2 created transactions, got %d", len(repo.created))
		}
	})

	t.Run("columns are matched case-insensitively in any order", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, nil, manager)

		data := strings.Join([]string{
			"Amount, Description, DATE, Type, Category",
			"50000, Nasi goreng, 2026-08-10, expense, Makanan",
		}, "\n")

		output, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Imported != 1 {
			t.Errorf("expected 1 imported, got %d", output.Imported)
		}
	})

	t.Run("a missing column rejects the file before any write", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, nil, manager)

		data := strings.Join([]string{
			"date,type,category,description",
			"2026-08-10,expense,Makanan,Nasi goreng",
		}, "\n")

		_, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)})
		var importErr *domainerror.ImportError
		if !errors.As(err, &importErr) {
			t.Fatalf("expected an import error, got %v", err)
		}
		if !errors.Is(importErr.Err, domainerror.ErrImportMissingColumns) {
			t.Errorf("expected missing-columns cause, got %v", importErr.Err)
		}
		if len(repo.created) != 0 {
			t.Errorf("expected no writes for a rejected file, got %d", len(repo.created))
		}
	})

	t.Run("broken rows are skipped with line numbers", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, nil, manager)

		data := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-08-10,expense,Makanan,50000,Nasi goreng",
			"bukan-tanggal,expense,Makanan,60000,Tanggal rusak",
			"2026-08-12,pinjaman,Makanan,70000,Tipe rusak",
			"2026-08-13,expense,Makanan,-10,Jumlah rusak",
		}, "\n")

		output, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if output.Imported != 1 {
			t.Errorf("expected 1 imported, got %d", output.Imported)
		}
		if len(output.Skipped) != 3 {
			t.Fatalf("expected 3 skipped rows, got %d", len(output.Skipped))
		}
		wantLines := []int{3, 4, 5}
		for i, issue := range output.Skipped {
			if issue.Line != wantLines[i] {
				t.Errorf("skipped[%d]: expected line %d, got %d", i, wantLines[i], issue.Line)
			}
			if issue.Reason == "" {
				t.Errorf("skipped[%d]: expected a reason", i)
			}
		}
	})

	t.Run("unknown category falls back to the catch-all without a suggester", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, nil, manager)

		data := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-08-10,expense,Jajan,50000,Cilok",
		}, "\n")

		if _, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if got := repo.created[0].Category; got != entity.CategoryOther {
			t.Errorf("expected category %q, got %q", entity.CategoryOther, got)
		}
	})

	t.Run("unknown category uses the suggester when configured", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, fixedSuggester{category: "Makanan"}, manager)

		data := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-08-10,expense,Jajan,50000,Cilok",
		}, "\n")

		if _, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if got := repo.created[0].Category; got != "Makanan" {
			t.Errorf("expected suggested category %q, got %q", "Makanan", got)
		}
	})

	t.Run("an unusable suggestion falls back to the catch-all", func(t *testing.T) {
		repo, manager := importFixture()
		uc := NewImportCSVUseCase(repo, fixedSuggester{category: "Gaji"}, manager)

		data := strings.Join([]string{
			"date,type,category,amount,description",
			"2026-08-10,expense,Jajan,50000,Cilok",
		}, "\n")

		if _, err := uc.Execute(context.Background(), ImportCSVInput{AccountID: accountID, Data: []byte(data)}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if got := repo.created[0].Category; got != entity.CategoryOther {
			t.Errorf("expected category %q, got %q", entity.CategoryOther, got)
		}
	})
}

func TestExportCSV(t *testing.T) {
	accountID := uuid.New()
	repo := &stubTransactionRepo{}
	ctx := context.Background()

	date, _ := time.Parse("2006-01-02", "2026-08-10")
	if err := repo.Create(ctx, entity.NewTransaction(accountID, entity.TransactionTypeExpense,
		decimal.NewFromInt(50000), "Makanan", "Nasi goreng", date)); err != nil {
		t.Fatal(err)
	}

	uc := NewExportCSVUseCase(repo)
	output, err := uc.Execute(ctx, ExportCSVInput{AccountID: accountID})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if output.RowCount != 1 {
		t.Errorf("expected 1 row, got %d", output.RowCount)
	}
	lines := strings.Split(strings.TrimSpace(string(output.Data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus 1 row, got %d lines", len(lines))
	}
	if lines[0] != "date,type,category,amount,description" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "2026-08-10,expense,Makanan,50000,Nasi goreng" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestExportCSVEmptyLedger(t *testing.T) {
	uc := NewExportCSVUseCase(&stubTransactionRepo{})
	output, err := uc.Execute(context.Background(), ExportCSVInput{AccountID: uuid.New()})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if output.RowCount != 0 {
		t.Errorf("expected 0 rows, got %d", output.RowCount)
	}
	if got := strings.TrimSpace(string(output.Data)); got != "date,type,category,amount,description" {
		t.Errorf("expected header only, got %q", got)
	}
}
