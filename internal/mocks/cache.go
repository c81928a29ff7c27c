package mocks

import (
	"context"
	"sync"

	"github.com/news-admin/internal/cache"
)

// MockListingCache records cache traffic and can be told to fail
type MockListingCache struct {
	mu      sync.Mutex
	Entries map[string][]byte

	GetError        error
	SetError        error
	InvalidateError error

	GetCalls        int
	SetCalls        int
	InvalidateCalls int
}

// NewMockListingCache creates an empty cache double
func NewMockListingCache() *MockListingCache {
	return &MockListingCache{Entries: make(map[string][]byte)}
}

// Get returns the stored entry or cache.ErrMiss
func (m *MockListingCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetError != nil {
		return nil, m.GetError
	}
	v, ok := m.Entries[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	return v, nil
}

// Set stores value under key unless SetError is set
func (m *MockListingCache) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls++
	if m.SetError != nil {
		return m.SetError
	}
	m.Entries[key] = value
	return nil
}

// Invalidate drops the given keys unless InvalidateError is set
func (m *MockListingCache) Invalidate(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls++
	if m.InvalidateError != nil {
		return m.InvalidateError
	}
	for _, k := range keys {
		delete(m.Entries, k)
	}
	return nil
}
