package commands

import (
	"context"
	"errors"
	"time"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/service"
)

// UpdateServiceCommandHandler applies a ServiceChanges to a service.
//
// New files are stored first. The database change is then committed, and
// only afterwards are the detached assets (the previous cover image and the
// removed media and documents) deleted remotely. A failed commit reconciles
// the new files instead and leaves the old ones untouched.
type UpdateServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
	uploader   AssetUploader
	reconciler AssetReconciler
}

func NewUpdateServiceCommandHandler(
	uowFactory ServiceUoWFactory,
	uploader AssetUploader,
	reconciler AssetReconciler,
) UpdateServiceCommandHandler {
	return UpdateServiceCommandHandler{
		uowFactory: uowFactory,
		uploader:   uploader,
		reconciler: reconciler,
	}
}

func (h UpdateServiceCommandHandler) Handle(ctx context.Context, cmd UpdateServiceCommand) (cleanup.Report, error) {
	if err := cmd.Validate(); err != nil {
		return cleanup.Report{}, err
	}

	uploaded, err := h.uploader.Upload(ctx, asset.OwnerService, cmd.Changes().Files)
	if err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return cleanup.Report{}, err
	}

	detached, err := h.apply(ctx, cmd, uploaded)
	if err != nil {
		compensate(ctx, h.reconciler, uploaded)
		return cleanup.Report{}, err
	}

	if detached.IsEmpty() {
		return cleanup.Report{}, nil
	}
	return h.reconciler.Reconcile(ctx, detached), nil
}

func (h UpdateServiceCommandHandler) apply(
	ctx context.Context,
	cmd UpdateServiceCommand,
	uploaded uploads.Uploaded,
) (cleanup.AssetSet, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cleanup.AssetSet{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceRepository()
	aggregate, err := repo.Get(ctx, cmd.ServiceID())
	if err != nil {
		return cleanup.AssetSet{}, err
	}

	detached, err := applyServiceChanges(aggregate, cmd.Changes(), uploaded, time.Now())
	if err != nil {
		return cleanup.AssetSet{}, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return cleanup.AssetSet{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return cleanup.AssetSet{}, err
	}

	return detached, nil
}

func applyServiceChanges(
	s *service.Service,
	changes ServiceChanges,
	uploaded uploads.Uploaded,
	now time.Time,
) (cleanup.AssetSet, error) {
	var detached cleanup.AssetSet

	var nameErr, descriptionErr, datesErr, usersErr error
	if changes.Name != nil {
		nameErr = s.Rename(*changes.Name, now)
	}
	if changes.Description != nil {
		descriptionErr = s.Describe(*changes.Description, now)
	}
	if changes.InterviewDates != nil {
		datesErr = s.ReplaceInterviewDates(changes.InterviewDates, now)
	}
	if changes.UsersInvolved != nil {
		usersErr = s.ReplaceUsersInvolved(changes.UsersInvolved, now)
	}
	if err := errors.Join(nameErr, descriptionErr, datesErr, usersErr); err != nil {
		return detached, err
	}

	removedMedia, err := s.RemoveMedia(changes.RemoveMediaIDs, now)
	if err != nil {
		return detached, err
	}
	removedDocuments, err := s.RemoveDocuments(changes.RemoveDocumentIDs, now)
	if err != nil {
		return detached, err
	}
	detached.Media = removedMedia
	detached.Documents = removedDocuments

	if uploaded.CoverImage != nil {
		previous, err := s.ReplaceCoverImage(uploaded.CoverImage, now)
		if err != nil {
			return detached, err
		}
		detached.CoverImage = previous
	}
	if err = errors.Join(s.AddMedia(uploaded.Media...), s.AddDocuments(uploaded.Documents...)); err != nil {
		return detached, err
	}

	return detached, nil
}
