// Package kvstore provides the local-storage style key-value stores that
// entity collections are persisted in. Values are opaque text; every backend
// is safe for concurrent use.
package kvstore

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("kvstore: store is closed")

// Store is a string key to string value store.
//
//go:generate mockery --name Store --inpackage --filename mock_Store.go
type Store interface {
	// GetItem returns the value under key and whether it was present.
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	// RemoveItem is a no-op for missing keys.
	RemoveItem(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
