package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// fakeTransactionRepo mirrors the gorm repository contract: a missing row
// is (nil, nil), errors are reserved for backend failures.
type fakeTransactionRepo struct {
	rows map[uuid.UUID]*entity.Transaction
}

func newFakeTransactionRepo(txns ...*entity.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{rows: make(map[uuid.UUID]*entity.Transaction)}
	for _, txn := range txns {
		repo.rows[txn.ID] = txn
	}
	return repo
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.rows[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return r.rows[id], nil
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter, _ adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	var out []*entity.Transaction
	for _, txn := range r.rows {
		if txn.AccountID == filter.AccountID {
			out = append(out, txn)
		}
	}
	return &entity.TransactionListResult{Transactions: out, Total: int64(len(out))}, nil
}

func (r *fakeTransactionRepo) GetSummary(_ context.Context, _ adapter.TransactionFilter) (*entity.TransactionSummary, error) {
	return &entity.TransactionSummary{}, nil
}

func (r *fakeTransactionRepo) SumExpensesByCategory(_ context.Context, _ uuid.UUID, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	r.rows[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	var n int64
	for id, txn := range r.rows {
		if txn.AccountID == accountID {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

type stubBudgetRepo struct{}

func (stubBudgetRepo) Create(_ context.Context, _ *entity.Budget) error { return nil }
func (stubBudgetRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}
func (stubBudgetRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	return nil, nil
}
func (stubBudgetRepo) Update(_ context.Context, _ *entity.Budget) error { return nil }
func (stubBudgetRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

type stubGoalRepo struct{}

func (stubGoalRepo) Create(_ context.Context, _ *entity.Goal) error { return nil }
func (stubGoalRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Goal, error) {
	return nil, nil
}
func (stubGoalRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Goal, error) {
	return nil, nil
}
func (stubGoalRepo) Update(_ context.Context, _ *entity.Goal) error { return nil }
func (stubGoalRepo) Delete(_ context.Context, _ uuid.UUID) error    { return nil }

type stubReceivableRepo struct{}

func (stubReceivableRepo) Create(_ context.Context, _ *entity.Receivable) error { return nil }
func (stubReceivableRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Receivable, error) {
	return nil, nil
}
func (stubReceivableRepo) FindByAccount(_ context.Context, _ uuid.UUID) ([]*entity.Receivable, error) {
	return nil, nil
}
func (stubReceivableRepo) Update(_ context.Context, _ *entity.Receivable) error { return nil }
func (stubReceivableRepo) Delete(_ context.Context, _ uuid.UUID) error          { return nil }

func newManager(txns *fakeTransactionRepo) *appsync.Manager {
	return appsync.NewManager(appsync.Gateways{
		Transactions: txns,
		Budgets:      stubBudgetRepo{},
		Goals:        stubGoalRepo{},
		Receivables:  stubReceivableRepo{},
	}, nil, nil)
}

func testTransaction(accountID uuid.UUID) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		AccountID:   accountID,
		Type:        entity.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(50000),
		Category:    "Makanan",
		Description: "Nasi goreng",
		Date:        time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("a nonexistent transaction is rejected cleanly", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewUpdateTransactionUseCase(repo, newManager(repo))

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			AccountID:     uuid.New(),
			TransactionID: uuid.New(),
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(10000),
			Category:      "Makanan",
			Date:          time.Now(),
		})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected a transaction error, got %v", err)
		}
		if !errors.Is(txnErr.Err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", txnErr.Err)
		}
	})

	t.Run("another account's transaction cannot be updated", func(t *testing.T) {
		owner := uuid.New()
		txn := testTransaction(owner)
		repo := newFakeTransactionRepo(txn)
		uc := NewUpdateTransactionUseCase(repo, newManager(repo))

		_, err := uc.Execute(ctx, UpdateTransactionInput{
			AccountID:     uuid.New(),
			TransactionID: txn.ID,
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(10000),
			Category:      "Makanan",
			Date:          time.Now(),
		})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected a transaction error, got %v", err)
		}
		if !errors.Is(txnErr.Err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Errorf("expected ErrNotAuthorizedToModifyTransaction, got %v", txnErr.Err)
		}
	})

	t.Run("an owned transaction updates in place", func(t *testing.T) {
		owner := uuid.New()
		txn := testTransaction(owner)
		repo := newFakeTransactionRepo(txn)
		uc := NewUpdateTransactionUseCase(repo, newManager(repo))

		output, err := uc.Execute(ctx, UpdateTransactionInput{
			AccountID:     owner,
			TransactionID: txn.ID,
			Type:          entity.TransactionTypeExpense,
			Amount:        decimal.NewFromInt(75000),
			Category:      "Transportasi",
			Description:   "Bensin",
			Date:          txn.Date,
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !output.Transaction.Amount.Equal(decimal.NewFromInt(75000)) {
			t.Errorf("unexpected amount %s", output.Transaction.Amount)
		}
		stored, _ := repo.FindByID(ctx, txn.ID)
		if stored.Category != "Transportasi" {
			t.Errorf("expected the stored category to change, got %q", stored.Category)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("a nonexistent transaction is rejected cleanly", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		uc := NewDeleteTransactionUseCase(repo, newManager(repo))

		_, err := uc.Execute(ctx, DeleteTransactionInput{
			AccountID:     uuid.New(),
			TransactionID: uuid.New(),
		})
		var txnErr *domainerror.TransactionError
		if !errors.As(err, &txnErr) {
			t.Fatalf("expected a transaction error, got %v", err)
		}
		if !errors.Is(txnErr.Err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", txnErr.Err)
		}
	})

	t.Run("an owned transaction is removed", func(t *testing.T) {
		owner := uuid.New()
		txn := testTransaction(owner)
		repo := newFakeTransactionRepo(txn)
		uc := NewDeleteTransactionUseCase(repo, newManager(repo))

		if _, err := uc.Execute(ctx, DeleteTransactionInput{
			AccountID:     owner,
			TransactionID: txn.ID,
		}); err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if got, _ := repo.FindByID(ctx, txn.ID); got != nil {
			t.Error("expected the transaction to be gone")
		}
	})
}
