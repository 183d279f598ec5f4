package commands

import (
	"errors"

	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrUpdateApplicationStatusCommandIsNotConstructed = errors.New(
	"UpdateApplicationStatusCommand must be created via NewUpdateApplicationStatusCommand constructor",
)

type UpdateApplicationStatusCommand struct {
	applicationID kernel.UUID
	status        application.Status

	guard guard.ConstructorGuard
}

func NewUpdateApplicationStatusCommand(applicationID kernel.UUID, status application.Status) (UpdateApplicationStatusCommand, error) {
	if err := errors.Join(applicationID.Validate(), status.Validate()); err != nil {
		return UpdateApplicationStatusCommand{}, err
	}
	return UpdateApplicationStatusCommand{
		applicationID: applicationID,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateApplicationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateApplicationStatusCommandIsNotConstructed)
}

func (c UpdateApplicationStatusCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c UpdateApplicationStatusCommand) Status() application.Status {
	return c.status
}
