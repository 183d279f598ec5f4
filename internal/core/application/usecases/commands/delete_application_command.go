package commands

import (
	"errors"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrDeleteApplicationCommandIsNotConstructed = errors.New(
	"DeleteApplicationCommand must be created via NewDeleteApplicationCommand constructor",
)

// DeleteApplicationCommand withdraws an application.
type DeleteApplicationCommand struct {
	applicationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteApplicationCommand(applicationID kernel.UUID) (DeleteApplicationCommand, error) {
	if err := applicationID.Validate(); err != nil {
		return DeleteApplicationCommand{}, err
	}
	return DeleteApplicationCommand{
		applicationID: applicationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteApplicationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteApplicationCommandIsNotConstructed)
}

func (c DeleteApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}
