// Package realtime delivers collection change events over Redis pub/sub.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/duitku/backend/internal/application/adapter"
)

// channelPrefix namespaces feed channels within the Redis instance.
const channelPrefix = "duitku:feed"

// RedisFeed implements adapter.ChangeFeed on Redis pub/sub. One channel per
// (collection, account) pair so subscribers only receive changes to their
// own data.
type RedisFeed struct {
	client *redis.Client
}

// NewRedisFeed creates a new Redis-backed change feed.
func NewRedisFeed(client *redis.Client) *RedisFeed {
	return &RedisFeed{client: client}
}

// channelName returns the pub/sub channel for a collection and account.
func channelName(collection adapter.Collection, accountID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", channelPrefix, collection, accountID)
}

// Publish delivers a change event to subscribers of its collection/account
// channel.
func (f *RedisFeed) Publish(ctx context.Context, event adapter.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode change event: %w", err)
	}
	channel := channelName(event.Collection, event.AccountID)
	if err := f.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish change event: %w", err)
	}
	return nil
}

// Subscribe registers a handler for change events on the given collections.
// The handler runs on a dedicated goroutine until the subscription is closed.
func (f *RedisFeed) Subscribe(ctx context.Context, accountID uuid.UUID, collections []adapter.Collection, handler func(adapter.ChangeEvent)) (adapter.Subscription, error) {
	channels := make([]string, len(collections))
	for i, c := range collections {
		channels[i] = channelName(c, accountID)
	}

	pubsub := f.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	sub := &redisSubscription{pubsub: pubsub}
	go sub.run(handler)
	return sub, nil
}

// redisSubscription is one live pub/sub subscription.
type redisSubscription struct {
	pubsub    *redis.PubSub
	closeOnce sync.Once
}

// run decodes messages and dispatches them to the handler until the channel
// is closed.
func (s *redisSubscription) run(handler func(adapter.ChangeEvent)) {
	for msg := range s.pubsub.Channel() {
		var event adapter.ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			slog.Warn("Dropping undecodable change event",
				"channel", msg.Channel,
				"error", err,
			)
			continue
		}
		handler(event)
	}
}

// Close terminates the subscription. Safe to call more than once.
func (s *redisSubscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		err = s.pubsub.Close()
	})
	return err
}

var _ adapter.ChangeFeed = (*RedisFeed)(nil)
