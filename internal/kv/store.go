// Package kv holds the string blob store that session and leaderboard state round-trips through.
package kv

import (
	"context"
	"errors"
)

// ErrUnavailable wraps every backend failure so callers can classify storage errors.
var ErrUnavailable = errors.New("kv store unavailable")

// Store is a durable string store with last-writer-wins semantics.
// Implementations offer no transactions and no compare-and-set.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}
