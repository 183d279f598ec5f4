package commands

import (
	"errors"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrDeleteServiceCommandIsNotConstructed = errors.New(
	"DeleteServiceCommand must be created via NewDeleteServiceCommand constructor",
)

// DeleteServiceCommand removes a service together with its remote assets.
type DeleteServiceCommand struct {
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteServiceCommand(serviceID kernel.UUID) (DeleteServiceCommand, error) {
	if err := serviceID.Validate(); err != nil {
		return DeleteServiceCommand{}, err
	}
	return DeleteServiceCommand{
		serviceID: serviceID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteServiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteServiceCommandIsNotConstructed)
}

func (c DeleteServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}
