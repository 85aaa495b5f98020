package sync

import (
	"context"
	"errors"
	"sort"
	stdsync "sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/state"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// memoryBackend is a shared in-memory record store backing all four fake
// repositories, so a write through one is visible to the next reload.
type memoryBackend struct {
	mu           stdsync.Mutex
	transactions map[uuid.UUID]*entity.Transaction
	budgets      map[uuid.UUID]*entity.Budget
	goals        map[uuid.UUID]*entity.Goal
	receivables  map[uuid.UUID]*entity.Receivable

	failReads bool
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		budgets:      make(map[uuid.UUID]*entity.Budget),
		goals:        make(map[uuid.UUID]*entity.Goal),
		receivables:  make(map[uuid.UUID]*entity.Receivable),
	}
}

var errBackendDown = errors.New("backend down")

type fakeTransactionRepo struct{ backend *memoryBackend }

func (r *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.transactions[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	txn, ok := r.backend.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return txn, nil
}

func (r *fakeTransactionRepo) accountTransactions(accountID uuid.UUID) []*entity.Transaction {
	var out []*entity.Transaction
	for _, txn := range r.backend.transactions {
		if txn.AccountID == accountID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeTransactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter, _ adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if r.backend.failReads {
		return nil, errBackendDown
	}
	txns := r.accountTransactions(filter.AccountID)
	return &entity.TransactionListResult{Transactions: txns, Total: int64(len(txns))}, nil
}

func (r *fakeTransactionRepo) GetSummary(_ context.Context, filter adapter.TransactionFilter) (*entity.TransactionSummary, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if r.backend.failReads {
		return nil, errBackendDown
	}
	summary := &entity.TransactionSummary{}
	for _, txn := range r.accountTransactions(filter.AccountID) {
		if txn.Type == entity.TransactionTypeIncome {
			summary.IncomeTotal = summary.IncomeTotal.Add(txn.Amount)
		} else {
			summary.ExpenseTotal = summary.ExpenseTotal.Add(txn.Amount)
		}
	}
	summary.Balance = summary.IncomeTotal.Sub(summary.ExpenseTotal)
	return summary, nil
}

func (r *fakeTransactionRepo) SumExpensesByCategory(_ context.Context, accountID uuid.UUID, category string, start, end time.Time) (decimal.Decimal, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if r.backend.failReads {
		return decimal.Zero, errBackendDown
	}
	sum := decimal.Zero
	for _, txn := range r.accountTransactions(accountID) {
		if txn.Type == entity.TransactionTypeExpense && txn.Category == category &&
			!txn.Date.Before(start) && !txn.Date.After(end) {
			sum = sum.Add(txn.Amount)
		}
	}
	return sum, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.transactions[txn.ID] = txn
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	delete(r.backend.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) DeleteByAccount(_ context.Context, accountID uuid.UUID) (int64, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	var deleted int64
	for id, txn := range r.backend.transactions {
		if txn.AccountID == accountID {
			delete(r.backend.transactions, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeBudgetRepo struct{ backend *memoryBackend }

func (r *fakeBudgetRepo) Create(_ context.Context, b *entity.Budget) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.budgets[b.ID] = b
	return nil
}

func (r *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	b, ok := r.backend.budgets[id]
	if !ok {
		return nil, domainerror.ErrBudgetNotFound
	}
	return b, nil
}

func (r *fakeBudgetRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Budget, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if r.backend.failReads {
		return nil, errBackendDown
	}
	var out []*entity.Budget
	for _, b := range r.backend.budgets {
		if b.AccountID == accountID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) Update(_ context.Context, b *entity.Budget) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.budgets[b.ID] = b
	return nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	delete(r.backend.budgets, id)
	return nil
}

type fakeGoalRepo struct{ backend *memoryBackend }

func (r *fakeGoalRepo) Create(_ context.Context, g *entity.Goal) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	g, ok := r.backend.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (r *fakeGoalRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Goal, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if r.backend.failReads {
		return nil, errBackendDown
	}
	var out []*entity.Goal
	for _, g := range r.backend.goals {
		if g.AccountID == accountID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGoalRepo) Update(_ context.Context, g *entity.Goal) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.goals[g.ID] = g
	return nil
}

func (r *fakeGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	delete(r.backend.goals, id)
	return nil
}

type fakeReceivableRepo struct{ backend *memoryBackend }

func (r *fakeReceivableRepo) Create(_ context.Context, rec *entity.Receivable) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.receivables[rec.ID] = rec
	return nil
}

func (r *fakeReceivableRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Receivable, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	rec, ok := r.backend.receivables[id]
	if !ok {
		return nil, domainerror.ErrReceivableNotFound
	}
	return rec, nil
}

func (r *fakeReceivableRepo) FindByAccount(_ context.Context, accountID uuid.UUID) ([]*entity.Receivable, error) {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	if r.backend.failReads {
		return nil, errBackendDown
	}
	var out []*entity.Receivable
	for _, rec := range r.backend.receivables {
		if rec.AccountID == accountID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeReceivableRepo) Update(_ context.Context, rec *entity.Receivable) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	r.backend.receivables[rec.ID] = rec
	return nil
}

func (r *fakeReceivableRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.backend.mu.Lock()
	defer r.backend.mu.Unlock()
	delete(r.backend.receivables, id)
	return nil
}

// recordingFeed collects published events and hands notifications straight
// to the registered handlers.
type recordingFeed struct {
	mu       stdsync.Mutex
	events   []adapter.ChangeEvent
	handlers []func(adapter.ChangeEvent)
	closed   int
}

type recordingSubscription struct{ feed *recordingFeed }

func (s *recordingSubscription) Close() error {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	s.feed.closed++
	return nil
}

func (f *recordingFeed) Publish(_ context.Context, event adapter.ChangeEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *recordingFeed) Subscribe(_ context.Context, _ uuid.UUID, _ []adapter.Collection, handler func(adapter.ChangeEvent)) (adapter.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = append(f.handlers, handler)
	return &recordingSubscription{feed: f}, nil
}

func (f *recordingFeed) publishedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type countingRenderer struct {
	mu       stdsync.Mutex
	refreshs int
}

func (r *countingRenderer) Refresh(_ context.Context, _ state.Workspace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshs++
}

func (r *countingRenderer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshs
}

func testFixture() (*memoryBackend, Gateways) {
	backend := newMemoryBackend()
	gateways := Gateways{
		Transactions: &fakeTransactionRepo{backend: backend},
		Budgets:      &fakeBudgetRepo{backend: backend},
		Goals:        &fakeGoalRepo{backend: backend},
		Receivables:  &fakeReceivableRepo{backend: backend},
	}
	return backend, gateways
}

func TestOrchestratorMutateWritesThenReloads(t *testing.T) {
	backend, gateways := testFixture()
	feed := &recordingFeed{}
	renderer := &countingRenderer{}
	accountID := uuid.New()

	engine := New(accountID, state.NewStore(), gateways, feed, renderer)

	txn := entity.NewTransaction(accountID, entity.TransactionTypeExpense,
		decimal.NewFromInt(50000), "Makanan", "Nasi goreng", time.Now().UTC())

	err := engine.Mutate(context.Background(), adapter.CollectionTransactions, adapter.ChangeInsert, txn.ID,
		func(ctx context.Context) error {
			return gateways.Transactions.Create(ctx, txn)
		})
	if err != nil {
		t.Fatalf("Mutate failed: %v", err)
	}

	ws := engine.Store().Snapshot()
	if len(ws.Transactions) != 1 {
		t.Fatalf("expected 1 transaction after reload, got %d", len(ws.Transactions))
	}
	if !ws.Summary.ExpenseTotal.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected expense total 50000, got %s", ws.Summary.ExpenseTotal)
	}
	if feed.publishedCount() != 1 {
		t.Errorf("expected 1 published event, got %d", feed.publishedCount())
	}
	if renderer.count() != 1 {
		t.Errorf("expected 1 render refresh, got %d", renderer.count())
	}

	if _, ok := backend.transactions[txn.ID]; !ok {
		t.Error("transaction missing from the backend store")
	}
}

func TestOrchestratorMutateWriteFailureLeavesStateUntouched(t *testing.T) {
	_, gateways := testFixture()
	feed := &recordingFeed{}
	accountID := uuid.New()

	engine := New(accountID, state.NewStore(), gateways, feed, nil)

	err := engine.Mutate(context.Background(), adapter.CollectionTransactions, adapter.ChangeInsert, uuid.New(),
		func(ctx context.Context) error {
			return errBackendDown
		})
	if err == nil {
		t.Fatal("expected an error from a failed write")
	}

	var gatewayErr *domainerror.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected a gateway error, got %T", err)
	}
	if feed.publishedCount() != 0 {
		t.Error("no event should be published for a failed write")
	}
	if len(engine.Store().Snapshot().Transactions) != 0 {
		t.Error("state changed after a failed write")
	}
}

func TestOrchestratorReloadFailureRetainsPreviousState(t *testing.T) {
	backend, gateways := testFixture()
	accountID := uuid.New()
	engine := New(accountID, state.NewStore(), gateways, nil, nil)

	txn := entity.NewTransaction(accountID, entity.TransactionTypeIncome,
		decimal.NewFromInt(8000000), "Gaji", "Gaji bulanan", time.Now().UTC())
	if err := gateways.Transactions.Create(context.Background(), txn); err != nil {
		t.Fatal(err)
	}
	if err := engine.ReloadAll(context.Background()); err != nil {
		t.Fatalf("initial reload failed: %v", err)
	}

	backend.mu.Lock()
	backend.failReads = true
	backend.mu.Unlock()

	err := engine.ReloadAll(context.Background())
	if err == nil {
		t.Fatal("expected reload to fail")
	}
	var gatewayErr *domainerror.GatewayError
	if !errors.As(err, &gatewayErr) {
		t.Fatalf("expected a gateway error, got %T", err)
	}

	// Stale-but-consistent: the prior snapshot survives the failed reload.
	ws := engine.Store().Snapshot()
	if len(ws.Transactions) != 1 {
		t.Errorf("expected previous state retained, got %d transactions", len(ws.Transactions))
	}
	if ws.Loading {
		t.Error("loading flag should be cleared after a failed reload")
	}
}

func TestOrchestratorBudgetConsumption(t *testing.T) {
	_, gateways := testFixture()
	accountID := uuid.New()
	engine := New(accountID, state.NewStore(), gateways, nil, nil)
	ctx := context.Background()

	budget := entity.NewBudget(accountID, "Makanan", decimal.NewFromInt(1500000), "", entity.BudgetPeriodMonthly)
	if err := gateways.Budgets.Create(ctx, budget); err != nil {
		t.Fatal(err)
	}
	txn := entity.NewTransaction(accountID, entity.TransactionTypeExpense,
		decimal.NewFromInt(50000), "Makanan", "Nasi goreng", time.Now().UTC())
	if err := gateways.Transactions.Create(ctx, txn); err != nil {
		t.Fatal(err)
	}

	if err := engine.ReloadAll(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	ws := engine.Store().Snapshot()
	if len(ws.Budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(ws.Budgets))
	}
	if !ws.Budgets[0].Consumed.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("expected consumed 50000, got %s", ws.Budgets[0].Consumed)
	}
}

func TestManagerOpenAndRelease(t *testing.T) {
	_, gateways := testFixture()
	feed := &recordingFeed{}
	manager := NewManager(gateways, feed, nil)
	ctx := context.Background()

	account := &entity.Account{ID: uuid.New(), Email: "budi@duitku.id", Role: entity.AccountRoleUser}

	engine, err := manager.Open(ctx, account)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if engine.Store().Snapshot().Account == nil {
		t.Fatal("expected the account to be set after Open")
	}

	t.Run("reopening reuses the orchestrator", func(t *testing.T) {
		again, err := manager.Open(ctx, account)
		if err != nil {
			t.Fatalf("second Open failed: %v", err)
		}
		if again != engine {
			t.Error("expected the same orchestrator instance")
		}
	})

	t.Run("Get finds the open workspace", func(t *testing.T) {
		got, ok := manager.Get(account.ID)
		if !ok || got != engine {
			t.Error("expected Get to return the open orchestrator")
		}
	})

	t.Run("Release tears the workspace down", func(t *testing.T) {
		manager.Release(account.ID)
		if _, ok := manager.Get(account.ID); ok {
			t.Error("expected no workspace after Release")
		}
		// Double release is harmless.
		manager.Release(account.ID)
	})
}

func TestManagerEngineBeforeOpen(t *testing.T) {
	_, gateways := testFixture()
	manager := NewManager(gateways, nil, nil)
	accountID := uuid.New()

	engine := manager.Engine(accountID)
	if engine == nil {
		t.Fatal("expected an idle orchestrator")
	}
	if engine.AccountID() != accountID {
		t.Errorf("orchestrator bound to wrong account")
	}
	if again := manager.Engine(accountID); again != engine {
		t.Error("expected Engine to reuse the orchestrator")
	}
}

func TestOrchestratorChangeNotificationTriggersReload(t *testing.T) {
	_, gateways := testFixture()
	feed := &recordingFeed{}
	accountID := uuid.New()
	engine := New(accountID, state.NewStore(), gateways, feed, nil)
	ctx := context.Background()

	if err := engine.Subscribe(ctx); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	txn := entity.NewTransaction(accountID, entity.TransactionTypeExpense,
		decimal.NewFromInt(25000), "Transportasi", "Ojek online", time.Now().UTC())
	if err := gateways.Transactions.Create(ctx, txn); err != nil {
		t.Fatal(err)
	}

	feed.mu.Lock()
	handlers := append([]func(adapter.ChangeEvent){}, feed.handlers...)
	feed.mu.Unlock()
	if len(handlers) != 1 {
		t.Fatalf("expected 1 handler, got %d", len(handlers))
	}
	handlers[0](adapter.ChangeEvent{
		Collection: adapter.CollectionTransactions,
		Kind:       adapter.ChangeInsert,
		AccountID:  accountID,
		RecordID:   txn.ID,
	})

	if got := len(engine.Store().Snapshot().Transactions); got != 1 {
		t.Errorf("expected the notification to reload 1 transaction, got %d", got)
	}

	engine.ReleaseSubscriptions()
	feed.mu.Lock()
	closed := feed.closed
	feed.mu.Unlock()
	if closed != 1 {
		t.Errorf("expected 1 closed subscription, got %d", closed)
	}
	// Releasing again is safe.
	engine.ReleaseSubscriptions()
}

// gatedTransactionRepo blocks the first FindByFilter until released so a
// test can hold one reload in flight while a newer one completes.
type gatedTransactionRepo struct {
	*fakeTransactionRepo

	mu      stdsync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (r *gatedTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()
	if first {
		close(r.entered)
		<-r.release
	}
	return r.fakeTransactionRepo.FindByFilter(ctx, filter, pagination)
}

func TestOrchestratorSupersededReloadIsDiscarded(t *testing.T) {
	backend, gateways := testFixture()
	gated := &gatedTransactionRepo{
		fakeTransactionRepo: &fakeTransactionRepo{backend: backend},
		entered:             make(chan struct{}),
		release:             make(chan struct{}),
	}
	gateways.Transactions = gated

	accountID := uuid.New()
	renderer := &countingRenderer{}
	engine := New(accountID, state.NewStore(), gateways, nil, renderer)
	ctx := context.Background()

	first := entity.NewTransaction(accountID, entity.TransactionTypeExpense,
		decimal.NewFromInt(50000), "Makanan", "Nasi goreng", time.Now().UTC())
	if err := gated.Create(ctx, first); err != nil {
		t.Fatal(err)
	}

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- engine.ReloadAll(ctx)
	}()
	<-gated.entered

	second := entity.NewTransaction(accountID, entity.TransactionTypeIncome,
		decimal.NewFromInt(8000000), "Gaji", "Gaji bulanan", time.Now().UTC())
	if err := gated.Create(ctx, second); err != nil {
		t.Fatal(err)
	}

	if err := engine.ReloadAll(ctx); err != nil {
		t.Fatalf("newer reload failed: %v", err)
	}
	if got := len(engine.Store().Snapshot().Transactions); got != 2 {
		t.Fatalf("expected the newer reload to apply 2 transactions, got %d", got)
	}
	if renderer.count() != 1 {
		t.Fatalf("expected 1 render, got %d", renderer.count())
	}

	// Shrink the backend so a late apply by the older reload would be
	// visible, and raise the loading flag as if another reload were in
	// flight.
	if err := gated.Delete(ctx, second.ID); err != nil {
		t.Fatal(err)
	}
	engine.Store().SetLoading(true)

	close(gated.release)
	if err := <-firstErr; !errors.Is(err, domainerror.ErrReloadSuperseded) {
		t.Fatalf("expected ErrReloadSuperseded, got %v", err)
	}

	ws := engine.Store().Snapshot()
	if got := len(ws.Transactions); got != 2 {
		t.Errorf("superseded reload must not touch state, got %d transactions", got)
	}
	if !ws.Loading {
		t.Error("superseded reload must leave the loading flag to its owner")
	}
	if renderer.count() != 1 {
		t.Errorf("superseded reload must not re-render, got %d renders", renderer.count())
	}
}
