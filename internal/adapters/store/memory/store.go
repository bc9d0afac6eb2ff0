// Package memory implements the shared key-value store in process memory
// using go-cache. It serves tests and single-process deployments where the
// host publishes values through Set.
package memory

import (
	"context"

	"github.com/patrickmn/go-cache"

	"github.com/jsamuelsen/dailywisdom/internal/domain"
)

// Store is an in-memory key-value store. Entries never expire.
type Store struct {
	cache *cache.Cache
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get implements ports.KeyValueStore. The returned slice is a copy.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, found := s.cache.Get(key)
	if !found {
		return nil, domain.NewNotFoundError("key", key)
	}

	value := v.([]byte)
	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(key string, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)

	s.cache.Set(key, stored, cache.NoExpiration)
}

// Delete removes key. Missing keys are ignored.
func (s *Store) Delete(key string) {
	s.cache.Delete(key)
}

// Name returns the health check name for this store.
func (s *Store) Name() string {
	return "store:memory"
}

// Check always succeeds.
func (s *Store) Check(_ context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
