package ports

import (
	"context"
	"errors"
	"fmt"
	"io"

	"recruitment/internal/core/domain/model/asset"
)

// ErrStorageTransport is the sentinel behind every StorageTransportError.
var ErrStorageTransport = errors.New("storage transport error")

// PutRequest describes one object to store. Folder, ResourceKind and
// Transform come from the field policy of the upload.
type PutRequest struct {
	Folder       string
	ResourceKind asset.ResourceKind
	Transform    *asset.Transform
	Filename     string
	ContentType  string
	Size         int64
	Body         io.Reader
}

// DeleteResult reports whether the object existed before the delete.
type DeleteResult struct {
	Found bool
}

// BlobStore is the remote object-storage provider.
type BlobStore interface {
	// Put stores the object under a fresh public id inside req.Folder and
	// returns the Asset that references it. Auto kinds are narrowed to
	// image, video or raw by content type.
	Put(ctx context.Context, req PutRequest) (*asset.Asset, error)

	// Delete removes the object. A missing object is not an error:
	// it yields DeleteResult{Found: false}.
	Delete(ctx context.Context, id asset.StorageIdentifier, kind asset.ResourceKind) (DeleteResult, error)

	// Ping checks that the provider is reachable and the bucket exists.
	Ping(ctx context.Context) error
}

// StorageTransportError wraps a failed provider call.
type StorageTransportError struct {
	Op  string
	Key string
	Err error
}

func NewStorageTransportError(op, key string, err error) *StorageTransportError {
	return &StorageTransportError{Op: op, Key: key, Err: err}
}

func (e *StorageTransportError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s: %v", ErrStorageTransport, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", ErrStorageTransport, e.Op, e.Key, e.Err)
}

func (e *StorageTransportError) Is(target error) bool {
	return target == ErrStorageTransport
}

func (e *StorageTransportError) Unwrap() error {
	return e.Err
}
