package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/windwaves/internal/forecast"
)

var (
	// ErrNotFound is returned when no fresh bundle is cached under a key.
	ErrNotFound = errors.New("no cached bundle for key")
)

type entry struct {
	bundle  forecast.Bundle
	savedAt time.Time
}

// MemoryStore is a concurrency-safe in-memory bundle cache with a TTL and a
// bound on the number of entries.
type MemoryStore struct {
	mu sync.RWMutex

	data  map[string]entry
	order []string // keys, oldest save first

	// retention configuration
	maxEntries int           // max number of cached bundles
	ttl        time.Duration // max age of a bundle

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxEntries or ttl is <= 0, it is treated as unlimited.
func NewMemoryStore(maxEntries int, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]entry),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Save stores a bundle under key and enforces retention.
func (s *MemoryStore) Save(key string, b forecast.Bundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[key]; ok {
		s.removeKey(key)
	}
	s.data[key] = entry{bundle: b, savedAt: s.now()}
	s.order = append(s.order, key)

	// Enforce retention by count.
	for s.maxEntries > 0 && len(s.order) > s.maxEntries {
		delete(s.data, s.order[0])
		s.order = s.order[1:]
	}
}

// Get returns the bundle cached under key if it has not expired.
func (s *MemoryStore) Get(key string) (forecast.Bundle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || s.expired(e) {
		return forecast.Bundle{}, ErrNotFound
	}
	return e.bundle, nil
}

// Purge drops expired entries and returns how many were removed.
func (s *MemoryStore) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.order[:0]
	for _, key := range s.order {
		if s.expired(s.data[key]) {
			delete(s.data, key)
			removed++
			continue
		}
		kept = append(kept, key)
	}
	s.order = kept
	return removed
}

// Len returns the number of cached entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *MemoryStore) expired(e entry) bool {
	return s.ttl > 0 && s.now().Sub(e.savedAt) >= s.ttl
}

func (s *MemoryStore) removeKey(key string) {
	delete(s.data, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
