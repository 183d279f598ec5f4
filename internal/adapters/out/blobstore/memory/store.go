// Package memory implements the BlobStore port in process memory; intended
// for tests and local development.
package memory

import (
	"context"
	"io"
	"sync"
	"time"

	"recruitment/internal/adapters/out/blobstore"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"
)

type objectEntry struct {
	payload     []byte
	contentType string
	metadata    map[string]string
}

// Store keeps objects under the same keys the S3 adapter uses.
type Store struct {
	mu    sync.RWMutex
	objs  map[string]*objectEntry
	codec services.URLCodec
	now   func() time.Time
}

var _ ports.BlobStore = (*Store)(nil)

func New(codec services.URLCodec) *Store {
	return &Store{
		objs:  make(map[string]*objectEntry),
		codec: codec,
		now:   time.Now,
	}
}

func (s *Store) Put(ctx context.Context, req ports.PutRequest) (*asset.Asset, error) {
	if err := ctx.Err(); err != nil {
		return nil, ports.NewStorageTransportError("put", req.Folder, err)
	}
	kind, err := blobstore.StoredKind(req)
	if err != nil {
		return nil, err
	}
	payload, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, ports.NewStorageTransportError("put", req.Folder, err)
	}

	publicID := blobstore.NewPublicID(req.Folder)
	uploadedAt := s.now()

	s.mu.Lock()
	s.objs[blobstore.ObjectKey(kind, publicID)] = &objectEntry{
		payload:     payload,
		contentType: req.ContentType,
		metadata:    blobstore.Metadata(req),
	}
	s.mu.Unlock()

	url := s.codec.AssetURL(kind, uploadedAt.Unix(), publicID, blobstore.Extension(req.Filename))
	return asset.NewAsset(kernel.NewUUID(), url, kind, req.Filename, uploadedAt)
}

func (s *Store) Delete(ctx context.Context, id asset.StorageIdentifier, kind asset.ResourceKind) (ports.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DeleteResult{}, ports.NewStorageTransportError("delete", id.PublicID, err)
	}
	if err := kind.ValidateStorable(); err != nil {
		return ports.DeleteResult{}, err
	}
	key := blobstore.ObjectKey(kind, id.PublicID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objs[key]; !ok {
		return ports.DeleteResult{Found: false}, nil
	}
	delete(s.objs, key)
	return ports.DeleteResult{Found: true}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return ports.NewStorageTransportError("ping", "", err)
	}
	return nil
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objs)
}

// Object returns the payload and content type stored under kind and publicID.
func (s *Store) Object(kind asset.ResourceKind, publicID string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.objs[blobstore.ObjectKey(kind, publicID)]
	if !ok {
		return nil, "", false
	}
	return append([]byte(nil), entry.payload...), entry.contentType, true
}
