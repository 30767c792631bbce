package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded media lives. The local filesystem
// implementation below serves single-node deployments; an object-store
// bucket client can be slotted in without touching the handlers.
type Storage interface {
	// Save persists the file under key and returns its public URL.
	// key is a unique path within the store, e.g. "gallery/<uuid>.jpg".
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the file stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}
