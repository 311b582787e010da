package cache

import (
	"sync"
	"time"
)

// Store is a process-local key/value cache with per-entry TTL expiry. Expiry is
// the only invalidation mechanism; there is no capacity bound. Concurrent
// callers that miss on the same key may each recompute and overwrite the entry
// (last write wins).
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func New() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// NewWithClock lets tests control expiry without sleeping.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Set stores value under key until now+ttl, overwriting any existing entry.
func (s *Store) Set(key string, value interface{}, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(ttl),
	}
}

// Get returns the cached value for key, or false when the key is absent or
// past its expiry. Expired entries are removed lazily on access.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; another request may have refreshed it.
		if current, ok := s.entries[key]; ok && s.now().After(current.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}
