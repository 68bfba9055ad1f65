package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStorage struct {
	err error
}

func (f failingStorage) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStorage) Set(context.Context, string, []byte) error   { return f.err }
func (f failingStorage) Delete(context.Context, string) error        { return f.err }

func TestBreaker_PassesThrough(t *testing.T) {
	ctx := context.Background()
	b := WithBreaker(NewMemory(), "test")

	require.NoError(t, b.Set(ctx, "k", []byte("v")))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestBreaker_NotFoundDoesNotTrip(t *testing.T) {
	ctx := context.Background()
	b := WithBreaker(NewMemory(), "test")

	for i := 0; i < 10; i++ {
		_, err := b.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()
	backendErr := errors.New("backend down")
	b := WithBreaker(failingStorage{err: backendErr}, "test")

	for i := 0; i < 5; i++ {
		_, err := b.Get(ctx, "k")
		assert.ErrorIs(t, err, backendErr)
	}

	// Breaker is now open; calls fail fast without hitting the backend.
	_, err := b.Get(ctx, "k")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
