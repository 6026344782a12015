package promo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore remembers which sessions have dismissed which campaigns.
type SessionStore interface {
	Seen(ctx context.Context, sessionID, key string) (bool, error)
	MarkSeen(ctx context.Context, sessionID, key string) error
}

// MemoryStore is a process-local SessionStore.
type MemoryStore struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

func (m *MemoryStore) Seen(_ context.Context, sessionID, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.seen[key+":"+sessionID]
	return ok, nil
}

func (m *MemoryStore) MarkSeen(_ context.Context, sessionID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen[key+":"+sessionID] = struct{}{}
	return nil
}

const (
	seenKeyPrefix  = "promo:seen:"
	DefaultSeenTTL = 24 * time.Hour
)

// RedisStore keeps session markers in Redis. Markers expire with the
// session so abandoned sessions do not accumulate.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a marker store backed by Redis. A non-positive ttl
// uses DefaultSeenTTL.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultSeenTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func seenKey(key, sessionID string) string {
	return seenKeyPrefix + key + ":" + sessionID
}

func (s *RedisStore) Seen(ctx context.Context, sessionID, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, seenKey(key, sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("promo: seen: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) MarkSeen(ctx context.Context, sessionID, key string) error {
	if err := s.rdb.Set(ctx, seenKey(key, sessionID), "true", s.ttl).Err(); err != nil {
		return fmt.Errorf("promo: mark seen: %w", err)
	}
	return nil
}
