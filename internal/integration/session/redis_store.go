// Package session persists account session snapshots in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// keyPrefix namespaces session keys within the Redis instance.
const keyPrefix = "duitku:session"

// defaultTTL bounds how long a stored session survives without a logout.
const defaultTTL = 30 * 24 * time.Hour

// RedisStore implements adapter.SessionStore on Redis. One key per account,
// holding the serialized session snapshot.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    defaultTTL,
	}
}

// sessionKey returns the well-known key for an account's session.
func sessionKey(accountID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", keyPrefix, accountID)
}

// Save persists the session snapshot under the account's key.
func (s *RedisStore) Save(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.Account.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Load reads the session for an account. Returns (nil, nil) when no session
// is stored.
func (s *RedisStore) Load(ctx context.Context, accountID uuid.UUID) (*entity.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Delete removes the stored session. Deleting an absent session is not an
// error.
func (s *RedisStore) Delete(ctx context.Context, accountID uuid.UUID) error {
	if err := s.client.Del(ctx, sessionKey(accountID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

var _ adapter.SessionStore = (*RedisStore)(nil)
