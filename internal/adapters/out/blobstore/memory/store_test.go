package memory_test

import (
	"context"
	"strings"
	"testing"

	"recruitment/internal/adapters/out/blobstore/memory"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	codec, err := services.NewURLCodec("cdn.example.com", "acme")
	require.NoError(t, err)
	return memory.New(codec)
}

func TestStore_PutThenDelete(t *testing.T) {
	// Given
	ctx := t.Context()
	store := newStore(t)

	// When
	stored, err := store.Put(ctx, ports.PutRequest{
		Folder:       "applications/cv",
		ResourceKind: asset.Raw,
		Filename:     "cv.pdf",
		ContentType:  "application/pdf",
		Body:         strings.NewReader("%PDF"),
	})

	// Then
	require.NoError(t, err)
	id, err := services.Identify(stored.URL())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id.PublicID, "applications/cv/"))

	payload, contentType, ok := store.Object(asset.Raw, id.PublicID)
	require.True(t, ok)
	assert.Equal(t, "%PDF", string(payload))
	assert.Equal(t, "application/pdf", contentType)

	first, err := store.Delete(ctx, id, asset.Raw)
	require.NoError(t, err)
	assert.True(t, first.Found)

	second, err := store.Delete(ctx, id, asset.Raw)
	require.NoError(t, err)
	assert.False(t, second.Found)
	assert.Zero(t, store.Len())
}

func TestStore_CancelledContext(t *testing.T) {
	store := newStore(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := store.Delete(ctx, asset.StorageIdentifier{PublicID: "x"}, asset.Image)
	require.ErrorIs(t, err, ports.ErrStorageTransport)

	require.ErrorIs(t, store.Ping(ctx), ports.ErrStorageTransport)
}

func TestStore_RoundTripsUnusualFilenames(t *testing.T) {
	filenames := []string{
		"plan.final-v2",
		"Offer.v2.final.PDF",
		"Lebenslauf.пдф",
		"résumé (copy).docx",
		"no-extension",
		"trailing-dot.",
		"budget 2025 #3.xlsx",
	}

	for _, name := range filenames {
		t.Run(name, func(t *testing.T) {
			// Given
			ctx := t.Context()
			store := newStore(t)
			stored, err := store.Put(ctx, ports.PutRequest{
				Folder:       "services/documents",
				ResourceKind: asset.Raw,
				Filename:     name,
				ContentType:  "application/octet-stream",
				Body:         strings.NewReader("payload"),
			})
			require.NoError(t, err)

			// When
			id, err := services.Identify(stored.URL())
			require.NoError(t, err)
			result, err := store.Delete(ctx, id, asset.Raw)

			// Then
			require.NoError(t, err)
			assert.True(t, result.Found)
			assert.Zero(t, store.Len())
		})
	}
}
