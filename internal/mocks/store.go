package mocks

import (
	"context"
	"sync"
)

// MockStore stands in for the database health check
type MockStore struct {
	mu        sync.Mutex
	PingError error
	PingCalls int
}

// NewMockStore creates a store that reports healthy until PingError is set
func NewMockStore() *MockStore {
	return &MockStore{}
}

// HealthCheck returns PingError
func (m *MockStore) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PingCalls++
	return m.PingError
}
