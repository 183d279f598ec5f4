// Package s3 implements the BlobStore port on an S3-compatible bucket with
// minio-go.
package s3

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"recruitment/internal/adapters/out/blobstore"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"

	"github.com/dustin/go-humanize"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config configures the S3 client.
type Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Insecure disables TLS; local MinIO and test servers need it.
	Insecure bool
}

// Store is a ports.BlobStore backed by one bucket.
type Store struct {
	client *minio.Client
	bucket string
	codec  services.URLCodec
	now    func() time.Time
	logger *slog.Logger
}

var _ ports.BlobStore = (*Store)(nil)

// New constructs a Store. Delivery URLs of stored objects are built with codec.
func New(cfg Config, codec services.URLCodec, logger *slog.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3: bucket is required")
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		if cfg.Region != "" {
			endpoint = fmt.Sprintf("s3.%s.amazonaws.com", cfg.Region)
		} else {
			endpoint = "s3.amazonaws.com"
		}
	}
	var creds *credentials.Credentials
	if cfg.AccessKey != "" {
		creds = credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, "")
	} else {
		creds = credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvAWS{},
			&credentials.EnvMinio{},
			&credentials.IAM{},
		})
	}
	client, err := minio.New(endpoint, &minio.Options{
		Creds:        creds,
		Secure:       !cfg.Insecure,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("s3: create client: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		bucket: cfg.Bucket,
		codec:  codec,
		now:    time.Now,
		logger: logger.With("component", "s3_blob_store", "bucket", cfg.Bucket),
	}, nil
}

func (s *Store) Put(ctx context.Context, req ports.PutRequest) (*asset.Asset, error) {
	kind, err := blobstore.StoredKind(req)
	if err != nil {
		return nil, err
	}
	publicID := blobstore.NewPublicID(req.Folder)
	key := blobstore.ObjectKey(kind, publicID)

	size := req.Size
	if size <= 0 {
		size = -1
	}
	start := time.Now()
	info, err := s.client.PutObject(ctx, s.bucket, key, req.Body, size, minio.PutObjectOptions{
		ContentType:  req.ContentType,
		UserMetadata: blobstore.Metadata(req),
	})
	if err != nil {
		s.logger.DebugContext(ctx, "s3.put.error", "key", key, "error", err)
		return nil, ports.NewStorageTransportError("put", key, err)
	}

	uploadedAt := s.now()
	url := s.codec.AssetURL(kind, uploadedAt.Unix(), publicID, blobstore.Extension(req.Filename))
	s.logger.DebugContext(ctx, "s3.put.success",
		"key", key,
		"size", humanize.Bytes(uint64(info.Size)),
		"elapsed", time.Since(start),
	)
	return asset.NewAsset(kernel.NewUUID(), url, kind, req.Filename, uploadedAt)
}

// Delete stats the object first so that a missing object is reported as
// not found; RemoveObject succeeds for absent keys.
func (s *Store) Delete(ctx context.Context, id asset.StorageIdentifier, kind asset.ResourceKind) (ports.DeleteResult, error) {
	if err := kind.ValidateStorable(); err != nil {
		return ports.DeleteResult{}, err
	}
	key := blobstore.ObjectKey(kind, id.PublicID)

	if _, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			s.logger.DebugContext(ctx, "s3.delete.not_found", "key", key)
			return ports.DeleteResult{Found: false}, nil
		}
		return ports.DeleteResult{}, ports.NewStorageTransportError("stat", key, err)
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return ports.DeleteResult{}, ports.NewStorageTransportError("delete", key, err)
	}
	s.logger.DebugContext(ctx, "s3.delete.success", "key", key)
	return ports.DeleteResult{Found: true}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return ports.NewStorageTransportError("ping", s.bucket, err)
	}
	if !exists {
		return ports.NewStorageTransportError("ping", s.bucket, errors.New("bucket does not exist"))
	}
	return nil
}

func isNotFound(err error) bool {
	errResp := minio.ErrorResponse{}
	if errors.As(err, &errResp) {
		return errResp.StatusCode == http.StatusNotFound
	}
	return false
}
