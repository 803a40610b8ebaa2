package mocks

import (
	"context"
	"sync"
	"time"
)

// Cache is a mock implementation of ports.Cache backed by a map.
type Cache struct {
	Data map[string][]byte
	Err  error
	// SetErr fails writes only.
	SetErr error

	mu sync.Mutex
}

// NewCache creates an empty mock Cache.
func NewCache() *Cache {
	return &Cache{Data: make(map[string][]byte)}
}

// Get returns the stored value.
func (m *Cache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, false, m.Err
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Cache) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = value
	return nil
}

// Delete removes key.
func (m *Cache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.Data, key)
	return nil
}

// Close is a no-op.
func (m *Cache) Close() error {
	return nil
}

// StampedCache is a Cache that also reports write times.
type StampedCache struct {
	*Cache
	At time.Time
}

// UpdatedAt returns At for every key that is present.
func (m *StampedCache) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	_, ok, err := m.Get(ctx, key)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	return m.At, true, nil
}
