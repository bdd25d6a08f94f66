// Package metadata is the client's durable key-value store. The session
// tokens and the cached user record live here.
//
// Three drivers share one contract: SQLite (default, on-disk), memory
// (go-cache) and Redis. A Get of a missing key returns (nil, nil).
package metadata

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// MultiSet writes all pairs. Drivers that support it apply the
	// writes atomically.
	MultiSet(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	// MultiRemove deletes every listed key. Missing keys are not an error.
	MultiRemove(ctx context.Context, keys ...string) error
}
