// Package blobstore provides storage backends for compressed vector
// envelopes. Envelopes are immutable byte blobs: a store persists and
// returns them verbatim, so the codec's wire contract is independent of
// where the bytes live. CompressedStore optionally applies byte-level
// compression transparently on top of any backend.
package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when an envelope does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for persisting immutable envelope blobs.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put writes a blob atomically. Existing blobs are replaced.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the blob's contents. The returned slice is owned by
	// the caller.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs matching the prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
