package cache

import (
	"context"
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MemoryCache is a bounded in-process cache. Values are stored encoded so callers
// never share mutable state through it.
type MemoryCache struct {
	entries     *lru.Cache[string, []byte]
	serviceName string
}

func NewMemoryCache(size int, serviceName string) (*MemoryCache, error) {
	entries, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &MemoryCache{entries: entries, serviceName: serviceName}, nil
}

func (m *MemoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	data, ok := m.entries.Get(key)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	m.entries.Add(key, data)
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.entries.Remove(key)
	return nil
}

func (m *MemoryCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", m.serviceName, operation, key)
}

func (m *MemoryCache) Close() error {
	m.entries.Purge()
	return nil
}
