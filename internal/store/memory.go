package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/refi/refi-calculator/internal/domain"
)

// MemoryStore is an in-process InputStore
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]domain.LoanInputs
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]domain.LoanInputs)}
}

// Save stores a copy of the inputs under a new identifier
func (m *MemoryStore) Save(ctx context.Context, in domain.LoanInputs) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := NewID()
	m.mu.Lock()
	m.data[id] = in
	m.mu.Unlock()
	return id, nil
}

// Get returns the inputs saved under id
func (m *MemoryStore) Get(ctx context.Context, id string) (domain.LoanInputs, error) {
	if err := ctx.Err(); err != nil {
		return domain.LoanInputs{}, err
	}
	key, err := ParseID(id)
	if err != nil {
		return domain.LoanInputs{}, err
	}
	m.mu.RLock()
	in, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return domain.LoanInputs{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return in, nil
}

// DefaultCacheEntries bounds a MemoryCache created with a non-positive size
const DefaultCacheEntries = 1000

// MemoryCache is an in-process AnalysisCache. Entries expire after the ttl
// and the least recently used entry is evicted once the cache is full.
type MemoryCache struct {
	lru *expirable.LRU[string, *domain.Analysis]
}

// NewMemoryCache creates a cache of at most maxEntries analyses that live for
// ttl; ttl <= 0 never expires
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	return &MemoryCache{lru: expirable.NewLRU[string, *domain.Analysis](maxEntries, nil, ttl)}
}

// Get returns a cached analysis
func (c *MemoryCache) Get(_ context.Context, key string) (*domain.Analysis, bool, error) {
	a, ok := c.lru.Get(key)
	return a, ok, nil
}

// Set caches an analysis
func (c *MemoryCache) Set(_ context.Context, key string, a *domain.Analysis) error {
	c.lru.Add(key, a)
	return nil
}

// Len reports the number of cached analyses, expired ones included until
// they are swept
func (c *MemoryCache) Len() int { return c.lru.Len() }
