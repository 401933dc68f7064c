package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"

	"library-manager/pkg/cache"
)

// DefaultMemorySize bounds the in-process cache when no size is configured.
const DefaultMemorySize = 1024

var _ cache.Cache = (*MemoryCache)(nil)

// MemoryCache is the in-process fallback used when Redis is disabled or
// unreachable. Least recently used entries are evicted once maxEntries is
// reached; expired entries are dropped when read.
type MemoryCache struct {
	mu  sync.Mutex // lru.Cache is not safe for concurrent use
	lru *lru.Cache
	now func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache holds at most maxEntries values.
func NewMemoryCache(maxEntries int) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMemorySize
	}
	return &MemoryCache{
		lru: lru.New(maxEntries),
		now: time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	v, ok := m.lru.Get(key)
	if ok {
		entry := v.(memoryEntry)
		if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
			m.lru.Remove(key)
			ok = false
		} else {
			v = entry.data
		}
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(v.([]byte), dest); err != nil {
		return false, fmt.Errorf("memory cache decode %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("memory cache encode %s: %w", key, err)
	}

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.lru.Add(key, entry)
	m.mu.Unlock()
	return nil
}

// Len reports how many entries are held, expired ones included.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lru.Len()
}

func (m *MemoryCache) Ping(_ context.Context) error {
	return nil
}
