package commands

import (
	"context"
)

type UpdateApplicationStatusCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

func NewUpdateApplicationStatusCommandHandler(uowFactory ApplicationUoWFactory) UpdateApplicationStatusCommandHandler {
	return UpdateApplicationStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the decision. Setting the current status again is a no-op
// and does not write.
func (h UpdateApplicationStatusCommandHandler) Handle(ctx context.Context, cmd UpdateApplicationStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ApplicationRepository()
	aggregate, err := repo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	changed, err := aggregate.ChangeStatus(cmd.Status())
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
