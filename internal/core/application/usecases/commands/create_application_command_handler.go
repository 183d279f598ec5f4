package commands

import (
	"context"
	"time"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
)

// CreateApplicationCommandHandler stores an uploaded CV, or reuses the
// profile CV of the referenced user, and persists the application.
type CreateApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	uploader   AssetUploader
	reconciler AssetReconciler
}

func NewCreateApplicationCommandHandler(
	uowFactory ApplicationUoWFactory,
	uploader AssetUploader,
	reconciler AssetReconciler,
) CreateApplicationCommandHandler {
	return CreateApplicationCommandHandler{
		uowFactory: uowFactory,
		uploader:   uploader,
		reconciler: reconciler,
	}
}

func (h CreateApplicationCommandHandler) Handle(ctx context.Context, cmd CreateApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var uploaded uploads.Uploaded
	if cmd.UserID() == nil {
		var err error
		uploaded, err = h.uploader.Upload(ctx, asset.OwnerApplication, cmd.Files())
		if err != nil {
			compensate(ctx, h.reconciler, uploaded)
			return err
		}
	}

	if err := h.persist(ctx, cmd, uploaded.CV); err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return err
	}

	return nil
}

func (h CreateApplicationCommandHandler) persist(ctx context.Context, cmd CreateApplicationCommand, cv *asset.Asset) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID()); err != nil {
		return err
	}

	if cmd.UserID() != nil {
		profileCV, err := h.profileCV(ctx, uow, *cmd.UserID())
		if err != nil {
			return err
		}
		cv = profileCV
	}

	aggregate, err := application.NewApplication(
		cmd.ApplicationID(),
		cmd.Name(),
		cmd.Email(),
		cmd.ServiceID(),
		cmd.InterviewDate(),
		cv,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.ApplicationRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// profileCV returns a copy of the user's CV that references the same object.
func (h CreateApplicationCommandHandler) profileCV(ctx context.Context, uow ApplicationUoW, userID kernel.UUID) (*asset.Asset, error) {
	u, err := uow.UserRepository().Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.CV() == nil {
		return nil, errs.NewObjectNotFoundError("cv", userID.String())
	}
	return u.CV().CopyAs(kernel.NewUUID())
}
