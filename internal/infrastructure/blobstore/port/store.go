package port

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound signals an absent object.
var ErrNotFound = errors.New("blobstore: object not found")

// Store is the contract with the external audio object store. Objects are
// addressed by "{conversationID}/{messageID}.{ext}" keys; callers must have
// authorized the conversation prefix before touching the store.
type Store interface {
	// Put writes the object at key, returning the number of bytes stored.
	Put(ctx context.Context, key string, r io.Reader) (int64, error)

	// Open returns a reader over the object at key, or ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object at key. Deleting an absent object is not an error.
	Delete(ctx context.Context, key string) error
}
