package commands

import (
	"context"
)

// UpdateUserCommandHandler re-validates the new profile through the user
// aggregate before storing it.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{uowFactory: uowFactory}
}

func (h UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) error {
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

	repo := uow.UserRepository()
	aggregate, err := repo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	role := aggregate.Role()
	if cmd.Role() != nil {
		role = *cmd.Role()
	}
	if err = aggregate.ChangeProfile(cmd.Username(), cmd.Email(), role); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
