// pkg/storage/storage.go
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written. An
// absent key is a valid "no data yet" state, not a failure.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key/value adapter every collection persists through.
// Implementations must keep concurrent calls on different keys independent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
