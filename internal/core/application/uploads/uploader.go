package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/core/ports"
	"recruitment/internal/pkg/errs"
)

// File is one file of a multipart request, not yet stored.
type File struct {
	Field       string
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// Extension is the lowercase filename extension without the dot.
func (f File) Extension() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(f.Filename), "."))
}

// Uploaded groups stored assets by field.
type Uploaded struct {
	CoverImage *asset.Asset
	CV         *asset.Asset
	Media      []*asset.Asset
	Documents  []*asset.Asset
}

// AssetSet returns everything stored, for compensation after a failure.
func (u Uploaded) AssetSet() cleanup.AssetSet {
	return cleanup.AssetSet{
		CoverImage: u.CoverImage,
		CV:         u.CV,
		Media:      u.Media,
		Documents:  u.Documents,
	}
}

func (u Uploaded) IsEmpty() bool {
	return u.CoverImage == nil && u.CV == nil && len(u.Media) == 0 && len(u.Documents) == 0
}

// Uploader validates a request's files and writes them to the blob store.
// Every file is checked before the first write.
type Uploader struct {
	store     ports.BlobStore
	validator services.UploadValidator
	limits    asset.UploadLimits
	observer  ports.AssetObserver
	logger    *slog.Logger
}

func NewUploader(
	store ports.BlobStore,
	validator services.UploadValidator,
	limits asset.UploadLimits,
	observer ports.AssetObserver,
	logger *slog.Logger,
) (*Uploader, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("blob store")
	}
	if observer == nil {
		observer = ports.NopAssetObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Uploader{
		store:     store,
		validator: validator,
		limits:    limits,
		observer:  observer,
		logger:    logger.With("component", "uploader"),
	}, nil
}

type plannedFile struct {
	file    File
	verdict services.Verdict
	folder  string
}

// Check validates files against the request limits and field policies
// without writing anything.
func (u *Uploader) Check(owner asset.Owner, files []File) error {
	_, err := u.plan(owner, files)
	return err
}

// Upload checks every file, then stores them in order. Files on fields the
// owner does not keep are rejected with the rest of the checks. On a storage failure
// it returns the assets stored so far together with the error, so the caller
// can reconcile them.
func (u *Uploader) Upload(ctx context.Context, owner asset.Owner, files []File) (Uploaded, error) {
	plan, err := u.plan(owner, files)
	if err != nil {
		return Uploaded{}, err
	}

	var out Uploaded
	for _, p := range plan {
		stored, err := u.put(ctx, p)
		u.observer.RecordUpload(asset.Field(p.file.Field), p.verdict.ResourceKind, p.file.Size, err)
		if err != nil {
			u.logger.ErrorContext(ctx, "Upload failed",
				"field", p.file.Field, "filename", p.file.Filename, "error", err)
			return out, err
		}
		u.logger.InfoContext(ctx, "Upload stored",
			"field", p.file.Field, "url", stored.URL(), "kind", stored.ResourceKind().String())

		switch asset.Field(p.file.Field) {
		case asset.FieldCoverImage:
			out.CoverImage = stored
		case asset.FieldCV:
			out.CV = stored
		case asset.FieldMedia:
			out.Media = append(out.Media, stored)
		case asset.FieldDocuments:
			out.Documents = append(out.Documents, stored)
		}
	}
	return out, nil
}

func (u *Uploader) plan(owner asset.Owner, files []File) ([]plannedFile, error) {
	counts := make(map[asset.Field]int, len(files))
	for _, f := range files {
		if err := owner.CheckField(f.Field); err != nil {
			u.logger.Info("Upload rejected", "field", f.Field, "filename", f.Filename, "error", err)
			return nil, err
		}
		counts[asset.Field(f.Field)]++
	}
	if err := u.limits.CheckCounts(counts); err != nil {
		return nil, err
	}

	plan := make([]plannedFile, 0, len(files))
	for _, f := range files {
		if f.Open == nil {
			return nil, errs.NewValueIsRequiredError(fmt.Sprintf("%s content", f.Field))
		}
		if err := u.limits.CheckSize(asset.Field(f.Field), f.Filename, f.Size); err != nil {
			return nil, err
		}
		verdict, err := u.validator.Validate(f.Field, f.ContentType, f.Extension())
		if err != nil {
			u.logger.Info("Upload rejected",
				"field", f.Field, "filename", f.Filename, "content_type", f.ContentType, "error", err)
			return nil, err
		}

		verdict.Policy = verdict.Policy.ForOwner(owner)
		plan = append(plan, plannedFile{file: f, verdict: verdict, folder: verdict.Policy.Folder()})
	}
	return plan, nil
}

func (u *Uploader) put(ctx context.Context, p plannedFile) (*asset.Asset, error) {
	body, err := p.file.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p.file.Filename, err)
	}
	defer body.Close()

	stored, err := u.store.Put(ctx, ports.PutRequest{
		Folder:       p.folder,
		ResourceKind: p.verdict.ResourceKind,
		Transform:    p.verdict.Policy.Transform(),
		Filename:     p.file.Filename,
		ContentType:  p.file.ContentType,
		Size:         p.file.Size,
		Body:         body,
	})
	if err != nil {
		var transportErr *ports.StorageTransportError
		if errors.As(err, &transportErr) {
			return nil, err
		}
		return nil, ports.NewStorageTransportError("put", p.file.Filename, err)
	}
	return stored, nil
}
