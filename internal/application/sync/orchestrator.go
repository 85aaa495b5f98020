// Package sync keeps the application state consistent with the backend
// after every mutation and on realtime change notifications.
package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/state"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// Gateways bundles the repositories the orchestrator reads during a reload.
type Gateways struct {
	Transactions adapter.TransactionRepository
	Budgets      adapter.BudgetRepository
	Goals        adapter.GoalRepository
	Receivables  adapter.ReceivableRepository
}

// Orchestrator is the reconcile loop for one account's workspace. On any
// mutation it performs the write, then reloads every dependent collection
// and requests a re-render. Realtime notifications re-enter through the
// same reload path.
type Orchestrator struct {
	accountID uuid.UUID
	store     *state.Store
	gateways  Gateways
	feed      adapter.ChangeFeed
	renderer  adapter.Renderer

	// reloadSeq stamps each reload; results arriving after a newer reload
	// started are discarded without touching state.
	reloadSeq atomic.Uint64

	subMu sync.Mutex
	sub   adapter.Subscription
}

// New creates an orchestrator for the given account.
func New(accountID uuid.UUID, store *state.Store, gateways Gateways, feed adapter.ChangeFeed, renderer adapter.Renderer) *Orchestrator {
	return &Orchestrator{
		accountID: accountID,
		store:     store,
		gateways:  gateways,
		feed:      feed,
		renderer:  renderer,
	}
}

// Store returns the state store owned by this orchestrator.
func (o *Orchestrator) Store() *state.Store {
	return o.store
}

// AccountID returns the account this orchestrator reconciles for.
func (o *Orchestrator) AccountID() uuid.UUID {
	return o.accountID
}

// ReloadAll re-fetches the paginated transaction page, the transaction
// summary aggregate, budgets (with derived consumption), goals and
// receivables concurrently. If any read fails nothing is applied and the
// previous state is retained (stale-but-consistent). On success all slices
// and derived summary fields are replaced atomically and a re-render is
// requested.
func (o *Orchestrator) ReloadAll(ctx context.Context) error {
	token := o.reloadSeq.Add(1)
	ws := o.store.Snapshot()
	filter := adapter.TransactionFilter{
		AccountID: o.accountID,
		StartDate: ws.DateRange.Start,
		EndDate:   ws.DateRange.End,
	}
	pagination := adapter.TransactionPagination{
		Page:  ws.Cursor.Page,
		Limit: ws.Cursor.PerPage,
	}

	o.store.SetLoading(true)

	var (
		txnResult   *entity.TransactionListResult
		summary     *entity.TransactionSummary
		budgets     []*entity.BudgetWithConsumed
		goals       []*entity.Goal
		receivables []*entity.Receivable
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txnResult, err = o.gateways.Transactions.FindByFilter(gctx, filter, pagination)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = o.gateways.Transactions.GetSummary(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = o.loadBudgetsWithConsumed(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		goals, err = o.gateways.Goals.FindByAccount(gctx, o.accountID)
		return err
	})
	g.Go(func() error {
		var err error
		receivables, err = o.gateways.Receivables.FindByAccount(gctx, o.accountID)
		return err
	})

	if err := g.Wait(); err != nil {
		o.store.SetLoading(false)
		return domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayReload,
			"failed to refresh data, showing last known state",
			err,
		)
	}

	if token != o.reloadSeq.Load() {
		// The loading flag now belongs to the newer reload; it clears it
		// when it applies or fails.
		slog.Debug("Discarding superseded reload",
			"accountID", o.accountID,
			"token", token,
		)
		return domainerror.ErrReloadSuperseded
	}

	o.store.ReplaceCollections(state.CollectionUpdate{
		Transactions: txnResult.Transactions,
		TotalCount:   txnResult.Total,
		Budgets:      budgets,
		Goals:        goals,
		Receivables:  receivables,
		Summary: state.Summary{
			IncomeTotal:  summary.IncomeTotal,
			ExpenseTotal: summary.ExpenseTotal,
			Balance:      summary.Balance,
		},
	})

	if o.renderer != nil {
		o.renderer.Refresh(ctx, o.store.Snapshot())
	}
	return nil
}

// loadBudgetsWithConsumed fetches budgets and derives each one's consumed
// amount from expense transactions within its current period window.
func (o *Orchestrator) loadBudgetsWithConsumed(ctx context.Context) ([]*entity.BudgetWithConsumed, error) {
	budgets, err := o.gateways.Budgets.FindByAccount(ctx, o.accountID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	out := make([]*entity.BudgetWithConsumed, len(budgets))
	for i, b := range budgets {
		start, end := b.PeriodWindow(now)
		consumed, err := o.gateways.Transactions.SumExpensesByCategory(ctx, o.accountID, b.Category, start, end)
		if err != nil {
			return nil, err
		}
		out[i] = &entity.BudgetWithConsumed{Budget: b, Consumed: consumed}
	}
	return out, nil
}

// Mutate performs a single mutating write, publishes the change event and
// reloads. On write failure state is left untouched and the mutation is
// treated as not applied. A superseded reload is not an error: a newer
// reload is already carrying fresher data.
func (o *Orchestrator) Mutate(
	ctx context.Context,
	collection adapter.Collection,
	kind adapter.ChangeKind,
	recordID uuid.UUID,
	write func(context.Context) error,
) error {
	if err := write(ctx); err != nil {
		return domainerror.NewGatewayError(
			domainerror.ErrCodeGatewayWrite,
			"the change could not be saved",
			err,
		)
	}

	if o.feed != nil {
		event := adapter.ChangeEvent{
			Collection: collection,
			Kind:       kind,
			AccountID:  o.accountID,
			RecordID:   recordID,
		}
		if err := o.feed.Publish(ctx, event); err != nil {
			slog.Warn("Failed to publish change event",
				"accountID", o.accountID,
				"collection", collection,
				"error", err,
			)
		}
	}

	if err := o.ReloadAll(ctx); err != nil && !errors.Is(err, domainerror.ErrReloadSuperseded) {
		return err
	}
	return nil
}

// Subscribe establishes realtime subscriptions for the four mutable
// collections. Previously-held subscriptions are released first so no
// listener outlives an account switch. Each notification triggers a full
// reload, identical to a local mutation.
func (o *Orchestrator) Subscribe(ctx context.Context) error {
	o.ReleaseSubscriptions()
	if o.feed == nil {
		return nil
	}

	sub, err := o.feed.Subscribe(ctx, o.accountID, adapter.MutableCollections, func(event adapter.ChangeEvent) {
		if err := o.ReloadAll(ctx); err != nil && !errors.Is(err, domainerror.ErrReloadSuperseded) {
			slog.Warn("Reload after change notification failed",
				"accountID", o.accountID,
				"collection", event.Collection,
				"kind", event.Kind,
				"error", err,
			)
		}
	})
	if err != nil {
		return domainerror.NewGatewayError(
			domainerror.ErrCodeFeedSubscribe,
			"failed to subscribe to realtime updates",
			err,
		)
	}

	o.subMu.Lock()
	o.sub = sub
	o.subMu.Unlock()
	return nil
}

// ReleaseSubscriptions closes any held subscription. Safe to call when none
// is held and safe to call repeatedly.
func (o *Orchestrator) ReleaseSubscriptions() {
	o.subMu.Lock()
	sub := o.sub
	o.sub = nil
	o.subMu.Unlock()

	if sub != nil {
		if err := sub.Close(); err != nil {
			slog.Warn("Failed to close realtime subscription",
				"accountID", o.accountID,
				"error", err,
			)
		}
	}
}
