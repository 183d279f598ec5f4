package commands

import (
	"context"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/domain/model/asset"
)

// DeleteApplicationCommandHandler deletes the application and, when no other
// application or user profile still references it, its CV object.
type DeleteApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
	reconciler AssetReconciler
}

func NewDeleteApplicationCommandHandler(uowFactory ApplicationUoWFactory, reconciler AssetReconciler) DeleteApplicationCommandHandler {
	return DeleteApplicationCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
	}
}

func (h DeleteApplicationCommandHandler) Handle(ctx context.Context, cmd DeleteApplicationCommand) (cleanup.Report, error) {
	if err := cmd.Validate(); err != nil {
		return cleanup.Report{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return cleanup.Report{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ApplicationRepository()
	aggregate, err := repo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return cleanup.Report{}, err
	}

	shared, err := cvStillReferenced(ctx, uow, aggregate.CV(), 1, 0)
	if err != nil {
		return cleanup.Report{}, err
	}

	var report cleanup.Report
	if !shared {
		report = h.reconciler.Reconcile(ctx, cleanup.AssetSet{CV: aggregate.CV()})
	}

	if err = repo.Delete(ctx, cmd.ApplicationID()); err != nil {
		return report, err
	}

	if err = uow.Commit(ctx); err != nil {
		return report, err
	}

	return report, nil
}

// cvRefCounter is satisfied by both ApplicationUoW and UserUoW.
type cvRefCounter interface {
	ApplicationRepoFactory
	UserRepoFactory
}

// cvStillReferenced reports whether any record other than the releasing
// applications and users still points at cv.
func cvStillReferenced(
	ctx context.Context,
	uow cvRefCounter,
	cv *asset.Asset,
	releasingApplications, releasingUsers int64,
) (bool, error) {
	if cv == nil {
		return false, nil
	}
	applications, err := uow.ApplicationRepository().CountByCVURL(ctx, cv.URL())
	if err != nil {
		return false, err
	}
	users, err := uow.UserRepository().CountByCVURL(ctx, cv.URL())
	if err != nil {
		return false, err
	}
	return applications-releasingApplications+users-releasingUsers > 0, nil
}
