package commands

import (
	"context"

	"recruitment/internal/core/application/cleanup"
)

// DeleteUserCommandHandler deletes a user. The profile CV is reconciled only
// when no application shares it.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
	reconciler AssetReconciler
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, reconciler AssetReconciler) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) (cleanup.Report, error) {
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

	repo := uow.UserRepository()
	aggregate, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return cleanup.Report{}, err
	}

	shared, err := cvStillReferenced(ctx, uow, aggregate.CV(), 0, 1)
	if err != nil {
		return cleanup.Report{}, err
	}

	var report cleanup.Report
	if !shared && aggregate.CV() != nil {
		report = h.reconciler.Reconcile(ctx, cleanup.AssetSet{CV: aggregate.CV()})
	}

	if err = repo.Delete(ctx, cmd.UserID()); err != nil {
		return report, err
	}

	if err = uow.Commit(ctx); err != nil {
		return report, err
	}

	return report, nil
}
