package services_test

import (
	"testing"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadValidator_AcceptsEveryListedType(t *testing.T) {
	validator := services.NewUploadValidator()

	for _, field := range []string{"cv", "documents"} {
		for _, ct := range asset.DocumentContentTypes() {
			verdict, err := validator.Validate(field, ct, "")

			require.NoError(t, err, "%s %s", field, ct)
			assert.Equal(t, asset.Raw, verdict.ResourceKind)
			assert.True(t, verdict.Known)
		}
	}

	for _, ct := range asset.MediaContentTypes() {
		_, err := validator.Validate("media", ct, "")

		require.NoError(t, err, ct)
	}
}

func TestUploadValidator_Validate(t *testing.T) {
	validator := services.NewUploadValidator()

	t.Run("should accept docx as raw document in services folder", func(t *testing.T) {
		verdict, err := validator.Validate(
			"documents",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"docx",
		)

		require.NoError(t, err)
		assert.Equal(t, asset.Raw, verdict.ResourceKind)
		assert.Equal(t, "services/documents", verdict.Policy.Folder())
	})

	t.Run("should reject pdf on media and list allowed media types", func(t *testing.T) {
		_, err := validator.Validate("media", "application/pdf", "pdf")

		var vErr *asset.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "media", vErr.Field)
		assert.Contains(t, err.Error(), "application/pdf")
		for _, ct := range asset.MediaContentTypes() {
			assert.Contains(t, err.Error(), ct)
		}
	})

	t.Run("should accept text and octet-stream escape hatches for documents", func(t *testing.T) {
		_, err := validator.Validate("cv", "text/markdown", "md")
		require.NoError(t, err)

		_, err = validator.Validate("documents", "application/octet-stream", "docx")
		require.NoError(t, err)
	})

	t.Run("should list the document allow-list on rejection", func(t *testing.T) {
		_, err := validator.Validate("cv", "image/png", "png")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "image/png")
		assert.Contains(t, err.Error(), "application/vnd.ms-word.document.macroenabled.12")
	})

	t.Run("should not give media a prefix escape hatch", func(t *testing.T) {
		_, err := validator.Validate("media", "image/tiff", "tiff")
		require.Error(t, err)

		_, err = validator.Validate("media", "text/plain", "txt")
		require.Error(t, err)
	})

	t.Run("should resolve media kind from content type", func(t *testing.T) {
		verdict, err := validator.Validate("media", "video/quicktime", "mov")
		require.NoError(t, err)
		assert.Equal(t, asset.Video, verdict.ResourceKind)

		verdict, err = validator.Validate("media", "image/webp", "webp")
		require.NoError(t, err)
		assert.Equal(t, asset.Image, verdict.ResourceKind)
	})

	t.Run("should accept any image for cover and reject video", func(t *testing.T) {
		verdict, err := validator.Validate("coverImage", "image/avif", "")
		require.NoError(t, err)
		assert.Equal(t, asset.Image, verdict.ResourceKind)

		_, err = validator.Validate("coverImage", "video/mp4", "mp4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "video/mp4")
		assert.Contains(t, err.Error(), "coverImage")
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := validator.Validate("media", "IMAGE/PNG", "png")

		require.Error(t, err)
	})

	t.Run("should enforce provider formats for image fields", func(t *testing.T) {
		_, err := validator.Validate("coverImage", "image/heic", "HEIC")

		var vErr *asset.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "image/heic", vErr.ContentType)
		assert.Contains(t, err.Error(), ".heic")
		assert.Contains(t, err.Error(), `content type "image/heic"`)

		_, err = validator.Validate("coverImage", "image/jpeg", ".JPG")
		require.NoError(t, err)
	})

	t.Run("should accept unknown fields as auto", func(t *testing.T) {
		verdict, err := validator.Validate("avatar", "application/x-msdownload", "exe")

		require.NoError(t, err)
		assert.False(t, verdict.Known)
		assert.Equal(t, asset.Auto, verdict.ResourceKind)
	})
}
