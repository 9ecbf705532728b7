package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// memoryCache keeps entries JSON-encoded like the redis cache so callers never
// share memory with a cached value.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	cfg     *config.CacheConfig
	now     func() time.Time
}

func NewMemoryCache(cfg *config.CacheConfig) Cache {
	return newMemoryCache(cfg, time.Now)
}

func newMemoryCache(cfg *config.CacheConfig, now func() time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		cfg:     cfg,
		now:     now,
	}
}

func (m *memoryCache) Get(ctx context.Context, key string, value any) (bool, error) {
	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && !m.now().Before(entry.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(entry.data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = m.cfg.DefaultTTL
	}

	m.mu.Lock()
	m.entries[key] = memoryEntry{data: data, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()

	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *memoryCache) Close() error {
	m.mu.Lock()
	clear(m.entries)
	m.mu.Unlock()

	return nil
}
