package services_test

import (
	"testing"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceKindResolver_Resolve(t *testing.T) {
	resolver, err := services.NewResourceKindResolver(asset.Image)
	require.NoError(t, err)

	t.Run("should use the declared kind", func(t *testing.T) {
		got, err := resolver.Resolve(asset.Video, asset.FieldMedia, "https://h/c/video/upload/v1/x.mp4")

		require.NoError(t, err)
		assert.Equal(t, asset.Video, got.Kind)
		assert.False(t, got.IsFallback())
	})

	t.Run("should use the fixed field kind for legacy documents", func(t *testing.T) {
		got, err := resolver.Resolve(asset.UnknownKind, asset.FieldDocuments, "https://h/c/raw/upload/v1/x.pdf")

		require.NoError(t, err)
		assert.Equal(t, asset.Raw, got.Kind)
		assert.Equal(t, services.FallbackField, got.Reason)
	})

	t.Run("should infer video from the url suffix", func(t *testing.T) {
		got, err := resolver.Resolve(asset.UnknownKind, asset.FieldMedia, "https://h/c/video/upload/v1/x.MOV")

		require.NoError(t, err)
		assert.Equal(t, asset.Video, got.Kind)
		assert.Equal(t, services.FallbackVideoSuffix, got.Reason)
	})

	t.Run("should default legacy media to image", func(t *testing.T) {
		got, err := resolver.Resolve(asset.UnknownKind, asset.FieldMedia, "https://h/c/image/upload/v1/x.jpg")

		require.NoError(t, err)
		assert.Equal(t, asset.Image, got.Kind)
		assert.Equal(t, services.FallbackDefault, got.Reason)
	})

	t.Run("should treat auto as undeclared", func(t *testing.T) {
		got, err := resolver.Resolve(asset.Auto, asset.FieldMedia, "https://h/c/image/upload/v1/x.png")

		require.NoError(t, err)
		assert.True(t, got.IsFallback())
	})

	t.Run("should fail when the default is disabled", func(t *testing.T) {
		strict, err := services.NewResourceKindResolver(asset.UnknownKind)
		require.NoError(t, err)

		_, err = strict.Resolve(asset.UnknownKind, asset.FieldMedia, "https://h/c/image/upload/v1/x.png")

		require.ErrorIs(t, err, services.ErrResourceKindUnresolved)
	})
}

func TestParseLegacyKindFallback(t *testing.T) {
	for input, want := range map[string]asset.ResourceKind{
		"":      asset.Image,
		"image": asset.Image,
		"VIDEO": asset.Video,
		"none":  asset.UnknownKind,
	} {
		got, err := services.ParseLegacyKindFallback(input)

		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := services.ParseLegacyKindFallback("raw")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.NewResourceKindResolver(asset.Raw)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
