package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the in-progress session of each user.
// Load returns ErrNoSession when nothing usable is stored.
type SessionStore interface {
	Load(ctx context.Context, userID uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// MemoryStore keeps sessions in process memory. Values are stored encoded so
// callers never share a *Session.
type MemoryStore struct {
	mu sync.Mutex
	m  map[uuid.UUID][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[uuid.UUID][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, userID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	raw, ok := m.m[userID]
	m.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}
	return decodeSession(raw)
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	m.mu.Lock()
	m.m[s.UserID] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	delete(m.m, userID)
	m.mu.Unlock()
	return nil
}

// RedisStore keeps sessions as JSON under interview:session:<user id> with a TTL.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(userID uuid.UUID) string {
	return "interview:session:" + userID.String()
}

func (r *RedisStore) Load(ctx context.Context, userID uuid.UUID) (*Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	return decodeSession(raw)
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKey(s.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}

// decodeSession treats malformed data as no session at all.
func decodeSession(raw []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || !s.consistent() {
		return nil, ErrNoSession
	}
	return &s, nil
}
