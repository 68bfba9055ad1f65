// Package storage provides the key-value persistence capability used by
// the cart store and the order log. Backends only move bytes; callers
// own the serialization.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Storage is the persistence capability injected into anything that
// needs to survive a restart. Implementations must be safe for
// concurrent use.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
