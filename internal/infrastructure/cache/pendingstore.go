package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vita/internal/domain/tracker"
	apperrors "vita/internal/shared/errors"
)

// RedisPendingStore provides Redis-based storage for in-flight tracker
// connection handshakes, keyed by OAuth state.
type RedisPendingStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisPendingStore creates a new RedisPendingStore instance
// Parameters:
//   - client: Redis client instance
//   - prefix: Key prefix for namespacing (e.g., "fitbit:pending:")
//   - ttl: Time-to-live for handshake keys (recommended: 10 minutes)
func NewRedisPendingStore(client *redis.Client, prefix string, ttl time.Duration) *RedisPendingStore {
	return &RedisPendingStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Set stores the pending connection under the state with TTL.
func (s *RedisPendingStore) Set(ctx context.Context, state string, pending *tracker.PendingConnection, ttl time.Duration) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if pending == nil {
		return errors.New("pending connection cannot be nil")
	}
	if ttl <= 0 {
		ttl = s.ttl
	}

	data, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending connection: %w", err)
	}

	key := s.buildKey(state)
	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store pending connection in redis: %w", err)
	}

	return nil
}

// Get retrieves and consumes the pending connection (one-time use).
// GETDEL is atomic: get the value and delete the key in one operation,
// so a replayed state cannot complete a second connection. A miss maps
// to ErrSessionExpired since expiry and replay are indistinguishable.
func (s *RedisPendingStore) Get(ctx context.Context, state string) (*tracker.PendingConnection, error) {
	if state == "" {
		return nil, apperrors.ErrSessionExpired
	}

	key := s.buildKey(state)

	data, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to retrieve pending connection from redis: %w", err)
	}

	var pending tracker.PendingConnection
	if err := json.Unmarshal([]byte(data), &pending); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pending connection: %w", err)
	}

	return &pending, nil
}

// buildKey constructs the full Redis key with prefix
func (s *RedisPendingStore) buildKey(state string) string {
	return s.prefix + state
}
