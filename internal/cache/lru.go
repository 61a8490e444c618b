package cache

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LoaderFunc retrieves the value for key when it is not cached.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

// LRU is a read-through least recently used cache. Values are produced by the
// loader on a miss and the least recently used key is evicted once the cache
// holds size entries.
type LRU[K comparable, V any] struct {
	mu      sync.Mutex
	entries *lru.Cache[K, V]
	loader  LoaderFunc[K, V]
}

// NewLRU creates a cache holding at most size entries.
func NewLRU[K comparable, V any](size int, loader LoaderFunc[K, V]) (*LRU[K, V], error) {
	entries, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &LRU[K, V]{entries: entries, loader: loader}, nil
}

// Get returns the cached value for key, marking it as most recently used.
// On a miss the loader runs without holding the lock; if another caller
// stored the key in the meantime, the stored value is returned instead.
// Loader errors are returned as is and nothing is cached.
func (c *LRU[K, V]) Get(ctx context.Context, key K) (V, error) {
	if v, ok := c.entries.Get(key); ok {
		return v, nil
	}

	v, err := c.loader(ctx, key)
	if err != nil {
		var zero V
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries.Get(key); ok {
		return existing, nil
	}
	c.entries.Add(key, v)
	return v, nil
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return c.entries.Len()
}

// Keys returns the cached keys from least to most recently used.
func (c *LRU[K, V]) Keys() []K {
	return c.entries.Keys()
}
