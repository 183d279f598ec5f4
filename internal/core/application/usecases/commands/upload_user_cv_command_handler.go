package commands

import (
	"context"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
)

// UploadUserCVCommandHandler stores the new CV, records it on the profile and
// then deletes the previous CV object unless an application still uses it.
type UploadUserCVCommandHandler struct {
	uowFactory UserUoWFactory
	uploader   AssetUploader
	reconciler AssetReconciler
}

func NewUploadUserCVCommandHandler(
	uowFactory UserUoWFactory,
	uploader AssetUploader,
	reconciler AssetReconciler,
) UploadUserCVCommandHandler {
	return UploadUserCVCommandHandler{
		uowFactory: uowFactory,
		uploader:   uploader,
		reconciler: reconciler,
	}
}

func (h UploadUserCVCommandHandler) Handle(ctx context.Context, cmd UploadUserCVCommand) (*asset.Asset, cleanup.Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, cleanup.Report{}, err
	}

	uploaded, err := h.uploader.Upload(ctx, asset.OwnerUser, []uploads.File{cmd.File()})
	if err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return nil, cleanup.Report{}, err
	}

	detached, err := h.replace(ctx, cmd, uploaded.CV)
	if err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return nil, cleanup.Report{}, err
	}

	var report cleanup.Report
	if detached != nil {
		report = h.reconciler.Reconcile(ctx, cleanup.AssetSet{CV: detached})
	}
	return uploaded.CV, report, nil
}

// replace returns the previous CV when nothing else references it.
func (h UploadUserCVCommandHandler) replace(ctx context.Context, cmd UploadUserCVCommand, cv *asset.Asset) (*asset.Asset, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	aggregate, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	previous, err := aggregate.ReplaceCV(cv)
	if err != nil {
		return nil, err
	}

	shared, err := cvStillReferenced(ctx, uow, previous, 0, 1)
	if err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if shared {
		return nil, nil
	}
	return previous, nil
}
