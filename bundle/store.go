package bundle

import "sync"

// Store is a goroutine-safe in-memory registry of bundles keyed by
// digest. A nil *Store behaves as an always-empty registry, so
// callers can thread an optional store without nil checks.
type Store struct {
	mu sync.RWMutex
	m  map[Digest]*Bundle
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{m: make(map[Digest]*Bundle)}
}

// Put registers b under its digest, replacing any previous entry.
func (s *Store) Put(b *Bundle) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[b.Digest] = b
}

// Get returns the bundle registered under d, if any.
func (s *Store) Get(d Digest) (*Bundle, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.m[d]
	return b, ok
}

// Len reports the number of registered bundles.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
