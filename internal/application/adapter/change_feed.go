// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// Collection names the backend-resident record sets carried by the feed.
type Collection string

const (
	CollectionTransactions Collection = "transactions"
	CollectionBudgets      Collection = "budgets"
	CollectionGoals        Collection = "goals"
	CollectionReceivables  Collection = "receivables"
)

// MutableCollections lists the four collections that carry change events.
var MutableCollections = []Collection{
	CollectionTransactions,
	CollectionBudgets,
	CollectionGoals,
	CollectionReceivables,
}

// ChangeKind is the kind of change carried by a feed event.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent is one change notification delivered by the feed.
type ChangeEvent struct {
	Collection Collection `json:"collection"`
	Kind       ChangeKind `json:"kind"`
	AccountID  uuid.UUID  `json:"account_id"`
	RecordID   uuid.UUID  `json:"record_id"`
}

// Subscription is a live feed subscription. Its lifecycle is explicit:
// subscribe, then later Close. Close is safe to call more than once.
type Subscription interface {
	Close() error
}

// ChangeFeed is the realtime push channel for collection changes, keyed by
// collection name and account id.
type ChangeFeed interface {
	// Publish delivers a change event to all subscribers of the event's
	// collection and account.
	Publish(ctx context.Context, event ChangeEvent) error

	// Subscribe registers a handler for change events on the given
	// collections, filtered by account id. The handler runs until the
	// returned subscription is closed.
	Subscribe(ctx context.Context, accountID uuid.UUID, collections []Collection, handler func(ChangeEvent)) (Subscription, error)
}
