package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"recruitment/cmd"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() cmd.Config {
	return cmd.Config{
		BlobStore:        cmd.BlobStoreMemory,
		StorageHost:      "res.example.com",
		StorageCloudName: "demo",
	}
}

func TestNewCompositionRoot_WiresMemoryBackend(t *testing.T) {
	// Given
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// When
	root, err := cmd.NewCompositionRoot(memoryConfig(), nil, logger)

	// Then
	require.NoError(t, err)
	e := echo.New()
	root.HTTPServer().Register(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNewCompositionRoot_RejectsBadConfig(t *testing.T) {
	tests := map[string]cmd.Config{
		"missing storage host": {BlobStore: cmd.BlobStoreMemory, StorageCloudName: "demo"},
		"unknown backend":      {BlobStore: "ftp", StorageHost: "h", StorageCloudName: "c"},
		"bad fallback":         {BlobStore: cmd.BlobStoreMemory, StorageHost: "h", StorageCloudName: "c", LegacyKindFallback: "raw"},
		"s3 without bucket":    {StorageHost: "h", StorageCloudName: "c", S3Endpoint: "localhost:9000"},
	}

	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := cmd.NewCompositionRoot(cfg, nil, nil)

			require.Error(t, err)
		})
	}
}
