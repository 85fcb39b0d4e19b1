// Package storage holds the byte-level backends behind the content store.
// A backend knows nothing about document shapes: it reads and writes whole
// named JSON documents.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Read when a document has never been written.
var ErrNotExist = errors.New("storage: document does not exist")

type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}
