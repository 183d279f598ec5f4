package uploads_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"
	"recruitment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBlobStore struct{ mock.Mock }

func (m *MockBlobStore) Put(ctx context.Context, req ports.PutRequest) (*asset.Asset, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*asset.Asset), args.Error(1)
}

func (m *MockBlobStore) Delete(ctx context.Context, id asset.StorageIdentifier, kind asset.ResourceKind) (ports.DeleteResult, error) {
	args := m.Called(ctx, id, kind)
	return args.Get(0).(ports.DeleteResult), args.Error(1)
}

func (m *MockBlobStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func file(field, name, contentType, content string) uploads.File {
	return uploads.File{
		Field:       field,
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func stored(t *testing.T, url string, kind asset.ResourceKind) *asset.Asset {
	t.Helper()
	a, err := asset.NewAsset(kernel.NewUUID(), url, kind, "f", time.Now())
	require.NoError(t, err)
	return a
}

func newUploader(t *testing.T, store ports.BlobStore, limits asset.UploadLimits) *uploads.Uploader {
	t.Helper()
	u, err := uploads.NewUploader(store, services.NewUploadValidator(), limits, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return u
}

func TestUploader_Upload_RoutesByField(t *testing.T) {
	// Given
	ctx := t.Context()
	store := &MockBlobStore{}
	cover := stored(t, "https://h/c/image/upload/v1/services/coverImage/a.png", asset.Image)
	clip := stored(t, "https://h/c/video/upload/v1/services/media/b.mp4", asset.Video)
	doc := stored(t, "https://h/c/raw/upload/v1/services/documents/c.docx", asset.Raw)

	store.On("Put", mock.Anything, mock.MatchedBy(func(req ports.PutRequest) bool {
		return req.Folder == "services/coverImage" && req.ResourceKind == asset.Image &&
			req.Transform != nil && req.Transform.Width == 1200
	})).Return(cover, nil).Once()
	store.On("Put", mock.Anything, mock.MatchedBy(func(req ports.PutRequest) bool {
		return req.Folder == "services/media" && req.ResourceKind == asset.Video && req.Transform == nil
	})).Return(clip, nil).Once()
	store.On("Put", mock.Anything, mock.MatchedBy(func(req ports.PutRequest) bool {
		return req.Folder == "services/documents" && req.ResourceKind == asset.Raw &&
			req.Filename == "Offer.docx"
	})).Return(doc, nil).Once()

	uploader := newUploader(t, store, asset.DefaultUploadLimits())

	// When
	out, err := uploader.Upload(ctx, asset.OwnerService, []uploads.File{
		file("coverImage", "cover.png", "image/png", "png"),
		file("media", "clip.mp4", "video/mp4", "mp4"),
		file("documents", "Offer.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "docx"),
	})

	// Then
	require.NoError(t, err)
	assert.Same(t, cover, out.CoverImage)
	assert.Equal(t, []*asset.Asset{clip}, out.Media)
	assert.Equal(t, []*asset.Asset{doc}, out.Documents)
	store.AssertExpectations(t)
}

func TestUploader_Upload_RejectsBeforeAnyWrite(t *testing.T) {
	ctx := t.Context()
	store := &MockBlobStore{}
	uploader := newUploader(t, store, asset.DefaultUploadLimits())

	_, err := uploader.Upload(ctx, asset.OwnerService, []uploads.File{
		file("coverImage", "cover.png", "image/png", "png"),
		file("media", "brochure.pdf", "application/pdf", "pdf"),
	})

	var vErr *asset.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "media", vErr.Field)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestUploader_Upload_EnforcesLimits(t *testing.T) {
	store := &MockBlobStore{}
	limits, err := asset.NewUploadLimits(3, 16)
	require.NoError(t, err)
	uploader := newUploader(t, store, limits)

	t.Run("should reject oversize files", func(t *testing.T) {
		err := uploader.Check(asset.OwnerApplication, []uploads.File{file("cv", "cv.pdf", "application/pdf", "four")})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a second cover image", func(t *testing.T) {
		err := uploader.Check(asset.OwnerService, []uploads.File{
			file("coverImage", "a.png", "image/png", "a"),
			file("coverImage", "b.png", "image/png", "b"),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUploader_Upload_UsesOwnerFolderForCV(t *testing.T) {
	ctx := t.Context()
	store := &MockBlobStore{}
	cv := stored(t, "https://h/c/raw/upload/v1/users/cv/x.pdf", asset.Raw)
	store.On("Put", mock.Anything, mock.MatchedBy(func(req ports.PutRequest) bool {
		return req.Folder == "users/cv"
	})).Return(cv, nil).Once()

	uploader := newUploader(t, store, asset.DefaultUploadLimits())

	out, err := uploader.Upload(ctx, asset.OwnerUser, []uploads.File{file("cv", "cv.pdf", "application/pdf", "%PDF")})

	require.NoError(t, err)
	assert.Same(t, cv, out.CV)
	store.AssertExpectations(t)
}

func TestUploader_Upload_ReturnsPartialResultOnStorageFailure(t *testing.T) {
	ctx := t.Context()
	store := &MockBlobStore{}
	first := stored(t, "https://h/c/image/upload/v1/services/media/a.png", asset.Image)

	mock.InOrder(
		store.On("Put", mock.Anything, mock.Anything).Return(first, nil).Once(),
		store.On("Put", mock.Anything, mock.Anything).Return(nil, errors.New("503 slow down")).Once(),
	)

	uploader := newUploader(t, store, asset.DefaultUploadLimits())

	out, err := uploader.Upload(ctx, asset.OwnerService, []uploads.File{
		file("media", "a.png", "image/png", "a"),
		file("media", "b.png", "image/png", "b"),
	})

	require.ErrorIs(t, err, ports.ErrStorageTransport)
	assert.Equal(t, []*asset.Asset{first}, out.Media)
	assert.Equal(t, 1, out.AssetSet().Len())
	store.AssertExpectations(t)
}

func TestUploader_Upload_RejectsFieldsTheOwnerDoesNotKeep(t *testing.T) {
	tests := []struct {
		name  string
		owner asset.Owner
		files []uploads.File
	}{
		{
			name:  "cv on a service",
			owner: asset.OwnerService,
			files: []uploads.File{
				file("coverImage", "cover.png", "image/png", "png"),
				file("cv", "cv.pdf", "application/pdf", "%PDF"),
			},
		},
		{
			name:  "field without a policy",
			owner: asset.OwnerService,
			files: []uploads.File{file("attachment", "x.bin", "application/x-foo", "x")},
		},
		{
			name:  "media on an application",
			owner: asset.OwnerApplication,
			files: []uploads.File{
				file("cv", "cv.pdf", "application/pdf", "%PDF"),
				file("media", "clip.mp4", "video/mp4", "mp4"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockBlobStore{}
			uploader := newUploader(t, store, asset.DefaultUploadLimits())

			out, err := uploader.Upload(t.Context(), tt.owner, tt.files)

			var vErr *asset.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Reason, "unexpected file field")
			assert.True(t, out.IsEmpty())
			store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
		})
	}
}
