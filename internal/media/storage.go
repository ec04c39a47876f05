package media

import (
	"context"
	"errors"
)

// ErrNotFound signals that the remote object no longer exists. Deleting an
// already-deleted object is not a fault for callers.
var ErrNotFound = errors.New("remote object not found")

// StoredObject is the provider's reference for an uploaded file.
type StoredObject struct {
	URL      string
	PublicID string
}

// Storage abstracts the external blob service.
type Storage interface {
	Upload(ctx context.Context, folder, filename string, data []byte) (*StoredObject, error)
	Delete(ctx context.Context, publicID string) error
}
