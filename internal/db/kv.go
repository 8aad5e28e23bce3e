// Package db provides durable key-value storage for twine state.
//
// State is stored per namespace as one opaque value (JSON in practice).
// SQLite is the default backend; Badger and an in-memory map are alternatives.
package db

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when a namespace has no stored value.
var ErrNotFound = errors.New("namespace not found")

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// KV is a durable key-value store with one value per namespace.
type KV interface {
	// Get returns the value stored for namespace or ErrNotFound.
	Get(ctx context.Context, namespace string) ([]byte, error)

	// Put replaces the value stored for namespace.
	Put(ctx context.Context, namespace string, value []byte) error

	// Delete removes namespace. Deleting an absent namespace is not an error.
	Delete(ctx context.Context, namespace string) error

	// Close releases any resources held by the store.
	Close() error
}

// Open opens the KV backend by name. path is ignored for the memory backend.
func Open(backend, path string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		return NewSQLite(path)
	case BackendBadger:
		return NewBadger(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
