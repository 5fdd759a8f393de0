// Package storage provides the shared document store the marketplace
// collections persist into: one JSON document per logical key. Writes always
// replace the whole document; there are no partial updates and no
// transactions spanning keys.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document exists under the key.
var ErrNotFound = errors.New("document not found")

// Storage is a synchronous key/value document store.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
