// Package blobstore provides the object storage backing moderation and
// feedback records. The S3 client is the production implementation; Memory
// serves development deployments without bucket credentials and tests.
package blobstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("blobstore: object not found")

// Blob is the minimal object-store surface the stores build on.
type Blob interface {
	// Put writes data under key, overwriting silently (last-write-wins).
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Get fetches the object bytes; ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Exists reports whether an object is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
	// List returns up to limit keys matching prefix, in the store's own
	// listing order.
	List(ctx context.Context, prefix string, limit int) ([]string, error)
}
