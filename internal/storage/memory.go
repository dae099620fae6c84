package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Storage, used by tests and dry runs.
type Memory struct {
	mu    sync.Mutex
	items map[string]string
	quota int64
}

// NewMemory returns an empty store. A quota of zero or less means
// DefaultQuota.
func NewMemory(quota int64) *Memory {
	if quota <= 0 {
		quota = DefaultQuota
	}
	return &Memory{items: map[string]string{}, quota: quota}
}

func (m *Memory) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *Memory) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	need := itemSize(key, value)
	for k, v := range m.items {
		if k != key {
			need += itemSize(k, v)
		}
	}
	if need > m.quota {
		return quotaErr(key, need, m.quota)
	}
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *Memory) Usage(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k, v := range m.items {
		n += itemSize(k, v)
	}
	return n, nil
}

func (m *Memory) Close() error { return nil }
