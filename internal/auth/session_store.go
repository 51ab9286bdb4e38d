package auth

import (
	"context"
	"strconv"
	"sync"
	"time"

	"mealplan/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStore tracks which bearer tokens are currently valid. Tokens carry a
// TTL; a token past its TTL is indistinguishable from one never issued.
type SessionStore interface {
	Put(ctx context.Context, token string, ttl time.Duration) error
	Valid(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// MemorySessionStore holds sessions in process memory. Every session dies with
// the process, which matches the single-admin threat model this serves.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]time.Time // token -> expiry
}

var _ SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore creates an empty in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]time.Time)}
}

// Put registers a token until now+ttl.
func (s *MemorySessionStore) Put(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = time.Now().Add(ttl)
	return nil
}

// Valid reports whether the token is live. Expired tokens are pruned on read.
func (s *MemorySessionStore) Valid(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// Delete removes a token. Deleting an unknown token is not an error.
func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// RedisSessionStore keeps sessions in Redis so they survive restarts and can
// be shared between processes. Expiry is delegated to the key TTL.
type RedisSessionStore struct {
	cache *cache.Client
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store backed by the given cache.
func NewRedisSessionStore(cache *cache.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

// Put registers a token until now+ttl.
func (s *RedisSessionStore) Put(ctx context.Context, token string, ttl time.Duration) error {
	issued := strconv.FormatInt(time.Now().Unix(), 10)
	return s.cache.Set(ctx, sessionKeyPrefix+token, []byte(issued), ttl)
}

// Valid reports whether the token is live.
func (s *RedisSessionStore) Valid(ctx context.Context, token string) (bool, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}

// Delete removes a token. Deleting an unknown token is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
