// Package metadata is the durable key/value store behind the session:
// one sqlite table, values stored as opaque bytes.
package metadata

import (
	"context"
)

// Repository reads and writes metadata records. Get returns (nil, nil) for
// an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
