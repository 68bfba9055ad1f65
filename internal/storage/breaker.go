package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Breaker wraps a Storage with a circuit breaker. When the backend
// keeps failing the breaker opens and calls fail fast, so the caller's
// degrade-to-empty path runs instead of every request waiting on a dead
// backend. ErrNotFound counts as a success: an absent key is a normal
// answer, not a backend fault.
type Breaker struct {
	inner Storage
	cb    *gobreaker.CircuitBreaker[[]byte]
}

func WithBreaker(inner Storage, name string) *Breaker {
	settings := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	}
	return &Breaker{
		inner: inner,
		cb:    gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

func (b *Breaker) Get(ctx context.Context, key string) ([]byte, error) {
	return b.cb.Execute(func() ([]byte, error) {
		return b.inner.Get(ctx, key)
	})
}

func (b *Breaker) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.cb.Execute(func() ([]byte, error) {
		return nil, b.inner.Set(ctx, key, value)
	})
	return err
}

func (b *Breaker) Delete(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() ([]byte, error) {
		return nil, b.inner.Delete(ctx, key)
	})
	return err
}
