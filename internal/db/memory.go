package db

import (
	"context"
	"sync"
)

// Memory is a non-durable KV used for tests and ephemeral sessions.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	puts   int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored for namespace.
func (m *Memory) Get(_ context.Context, namespace string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[namespace]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value for namespace.
func (m *Memory) Put(_ context.Context, namespace string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[namespace] = append([]byte(nil), value...)
	m.puts++
	return nil
}

// Delete removes namespace.
func (m *Memory) Delete(_ context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, namespace)
	return nil
}

// Puts returns how many writes the store has received.
func (m *Memory) Puts() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.puts
}

// Close is a no-op.
func (m *Memory) Close() error {
	return nil
}
