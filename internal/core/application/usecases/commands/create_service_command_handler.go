package commands

import (
	"context"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/service"
)

// CreateServiceCommandHandler stores the uploaded files, then persists the
// service. If persisting fails the stored files are reconciled away.
type CreateServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
	uploader   AssetUploader
	reconciler AssetReconciler
}

func NewCreateServiceCommandHandler(
	uowFactory ServiceUoWFactory,
	uploader AssetUploader,
	reconciler AssetReconciler,
) CreateServiceCommandHandler {
	return CreateServiceCommandHandler{
		uowFactory: uowFactory,
		uploader:   uploader,
		reconciler: reconciler,
	}
}

func (h CreateServiceCommandHandler) Handle(ctx context.Context, cmd CreateServiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uploaded, err := h.uploader.Upload(ctx, asset.OwnerService, cmd.Files())
	if err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return err
	}

	if err = h.persist(ctx, cmd, uploaded.CoverImage, uploaded.Media, uploaded.Documents); err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return err
	}

	return nil
}

func (h CreateServiceCommandHandler) persist(
	ctx context.Context,
	cmd CreateServiceCommand,
	coverImage *asset.Asset,
	media, documents []*asset.Asset,
) error {
	aggregate, err := service.NewService(
		cmd.ServiceID(),
		cmd.Name(),
		cmd.Description(),
		coverImage,
		media,
		documents,
		cmd.InterviewDates(),
		cmd.UsersInvolved(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServiceRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
