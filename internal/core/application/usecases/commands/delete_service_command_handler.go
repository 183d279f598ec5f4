package commands

import (
	"context"

	"recruitment/internal/core/application/cleanup"
)

// DeleteServiceCommandHandler reconciles every asset of the service, then
// deletes the row whatever the report says. Remote failures never block the
// delete; they are returned in the report.
type DeleteServiceCommandHandler struct {
	uowFactory ServiceUoWFactory
	reconciler AssetReconciler
}

func NewDeleteServiceCommandHandler(uowFactory ServiceUoWFactory, reconciler AssetReconciler) DeleteServiceCommandHandler {
	return DeleteServiceCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
	}
}

func (h DeleteServiceCommandHandler) Handle(ctx context.Context, cmd DeleteServiceCommand) (cleanup.Report, error) {
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

	repo := uow.ServiceRepository()
	aggregate, err := repo.Get(ctx, cmd.ServiceID())
	if err != nil {
		return cleanup.Report{}, err
	}

	report := h.reconciler.Reconcile(ctx, cleanup.AssetSet{
		CoverImage: aggregate.CoverImage(),
		Media:      aggregate.Media(),
		Documents:  aggregate.Documents(),
	})

	if err = repo.Delete(ctx, cmd.ServiceID()); err != nil {
		return report, err
	}

	if err = uow.Commit(ctx); err != nil {
		return report, err
	}

	return report, nil
}
