// Package storage holds the object stores used for temporary audio uploads.
package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNoObject = errors.New("storage: no object")

// ObjectStore uploads and removes blobs by key. Put returns a URI the speech
// backend can read the object from.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
