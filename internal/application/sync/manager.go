package sync

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/state"
	"github.com/duitku/backend/internal/domain/entity"
)

// Manager owns one orchestrator per authenticated account. Workspaces are
// created on login (or session resume) and torn down on logout.
type Manager struct {
	gateways Gateways
	feed     adapter.ChangeFeed
	renderer adapter.Renderer

	mu      sync.Mutex
	engines map[uuid.UUID]*Orchestrator
}

// NewManager creates a workspace manager.
func NewManager(gateways Gateways, feed adapter.ChangeFeed, renderer adapter.Renderer) *Manager {
	return &Manager{
		gateways: gateways,
		feed:     feed,
		renderer: renderer,
		engines:  make(map[uuid.UUID]*Orchestrator),
	}
}

// Open creates (or reuses) the orchestrator for the account, performs the
// initial full load and establishes the realtime subscriptions. Existing
// subscriptions for the account are released before resubscribing.
func (m *Manager) Open(ctx context.Context, account *entity.Account) (*Orchestrator, error) {
	m.mu.Lock()
	engine, ok := m.engines[account.ID]
	if !ok {
		engine = New(account.ID, state.NewStore(), m.gateways, m.feed, m.renderer)
		m.engines[account.ID] = engine
	}
	m.mu.Unlock()

	engine.Store().SetAccount(account)
	if err := engine.ReloadAll(ctx); err != nil {
		return nil, err
	}
	if err := engine.Subscribe(ctx); err != nil {
		return nil, err
	}
	return engine, nil
}

// Engine returns the orchestrator for the account, creating an idle one if
// no workspace is open yet. Mutations arriving before a login-driven Open
// (for example right after a server restart) still get the full
// write-then-reload treatment.
func (m *Manager) Engine(accountID uuid.UUID) *Orchestrator {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine, ok := m.engines[accountID]
	if !ok {
		engine = New(accountID, state.NewStore(), m.gateways, m.feed, m.renderer)
		m.engines[accountID] = engine
	}
	return engine
}

// Get returns the orchestrator for an account, if one is open.
func (m *Manager) Get(accountID uuid.UUID) (*Orchestrator, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	engine, ok := m.engines[accountID]
	return engine, ok
}

// Release tears down the account's workspace: subscriptions are released
// first, then the state is reset to initial values. Releasing an account
// with no open workspace is a no-op, so double logout is harmless.
func (m *Manager) Release(accountID uuid.UUID) {
	m.mu.Lock()
	engine, ok := m.engines[accountID]
	delete(m.engines, accountID)
	m.mu.Unlock()

	if !ok {
		return
	}
	engine.ReleaseSubscriptions()
	engine.Store().Reset()
}
