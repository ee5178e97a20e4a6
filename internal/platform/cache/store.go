package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Store memoises loaded values for the lifetime of one command. Concurrent loads of the same
// key share a single loader call and failed loads are never cached.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	flight  singleflight.Group
	hits    atomic.Int64
	misses  atomic.Int64
}

// Stats counts lookups since the store was created.
type Stats struct {
	Hits    int64
	Misses  int64
	Entries int
}

func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

// Load returns the value cached under key or fills it from loader. A value cached under the
// same key with a different type is treated as a miss and replaced.
func Load[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	if v, ok := lookup[T](s, key); ok {
		s.hits.Add(1)
		return v, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := lookup[T](s, key); ok {
			return cached, nil
		}
		s.misses.Add(1)
		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = loaded
		s.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func lookup[T any](s *Store, key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key].(T)
	return v, ok
}

// Invalidate drops the given keys.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	for _, key := range keys {
		delete(s.entries, key)
	}
	s.mu.Unlock()
}

func (s *Store) Stats() Stats {
	s.mu.RLock()
	n := len(s.entries)
	s.mu.RUnlock()
	return Stats{Hits: s.hits.Load(), Misses: s.misses.Load(), Entries: n}
}
