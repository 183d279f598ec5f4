package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"

	"github.com/dustin/go-humanize"
)

// Blob store backends selectable with BLOB_STORE.
const (
	BlobStoreS3     = "s3"
	BlobStoreMemory = "memory"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	BlobStore        string
	S3Endpoint       string
	S3Region         string
	S3Bucket         string
	S3AccessKey      string
	S3SecretKey      string
	S3Insecure       string
	StorageHost      string
	StorageCloudName string

	MaxFileSize          string
	MaxFilesPerRequest   string
	CleanupConcurrency   string
	CleanupDeleteTimeout string
	LegacyKindFallback   string
	HealthCheckSchedule  string
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// UploadLimits parses MAX_FILE_SIZE (a humanized size such as 50MB) and
// MAX_FILES_PER_REQUEST. Empty values keep the defaults.
func (c Config) UploadLimits() (asset.UploadLimits, error) {
	limits := asset.DefaultUploadLimits()
	if c.MaxFileSize != "" {
		size, err := humanize.ParseBytes(c.MaxFileSize)
		if err != nil {
			return asset.UploadLimits{}, fmt.Errorf("MAX_FILE_SIZE: %w", err)
		}
		limits.MaxFileSizeBytes = int64(size)
	}
	if c.MaxFilesPerRequest != "" {
		n, err := strconv.Atoi(c.MaxFilesPerRequest)
		if err != nil {
			return asset.UploadLimits{}, fmt.Errorf("MAX_FILES_PER_REQUEST: %w", err)
		}
		limits.MaxFilesPerRequest = n
	}
	return asset.NewUploadLimits(limits.MaxFileSizeBytes, limits.MaxFilesPerRequest)
}

// CleanupOptions parses CLEANUP_CONCURRENCY and CLEANUP_DELETE_TIMEOUT.
// Zero values let the orchestrator apply its defaults.
func (c Config) CleanupOptions() (cleanup.Options, error) {
	var opts cleanup.Options
	if c.CleanupConcurrency != "" {
		n, err := strconv.Atoi(c.CleanupConcurrency)
		if err != nil {
			return cleanup.Options{}, fmt.Errorf("CLEANUP_CONCURRENCY: %w", err)
		}
		opts.Concurrency = n
	}
	if c.CleanupDeleteTimeout != "" {
		d, err := time.ParseDuration(c.CleanupDeleteTimeout)
		if err != nil {
			return cleanup.Options{}, fmt.Errorf("CLEANUP_DELETE_TIMEOUT: %w", err)
		}
		opts.DeleteTimeout = d
	}
	return opts, nil
}

// LegacyKind is the resolver default for assets stored without a kind.
func (c Config) LegacyKind() (asset.ResourceKind, error) {
	return services.ParseLegacyKindFallback(c.LegacyKindFallback)
}

// BlobStoreBackend defaults to s3.
func (c Config) BlobStoreBackend() (string, error) {
	switch backend := strings.ToLower(strings.TrimSpace(c.BlobStore)); backend {
	case "", BlobStoreS3:
		return BlobStoreS3, nil
	case BlobStoreMemory:
		return BlobStoreMemory, nil
	default:
		return "", fmt.Errorf("BLOB_STORE: %q is not s3 or memory", c.BlobStore)
	}
}

// Insecure reports whether S3_INSECURE is set to a true value.
func (c Config) Insecure() bool {
	insecure, _ := strconv.ParseBool(c.S3Insecure)
	return insecure
}

// BodyLimit bounds a whole request: every allowed file at full size plus
// one megabyte for form values, in the notation echo's BodyLimit expects.
func (c Config) BodyLimit(limits asset.UploadLimits) string {
	return fmt.Sprintf("%dB", limits.MaxFileSizeBytes*int64(limits.MaxFilesPerRequest)+1<<20)
}
