// Package persist provides the persistence adapter: the core hands it one
// serialized state blob after every mutation and asks for the last blob on
// startup. The storage medium is the adapter's concern; the core never sees
// anything but bytes.
package persist

import (
	"context"
	"errors"
)

// ErrNotFound indicates no blob has been stored yet.
var ErrNotFound = errors.New("state blob not found")

// Blob is the persistence contract: load the last stored state blob, save a
// new one under the same fixed key.
type Blob interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
