package commands

import (
	"errors"
	"strings"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/pkg/guard"
)

var ErrUpdateServiceCommandIsNotConstructed = errors.New(
	"UpdateServiceCommand must be created via NewUpdateServiceCommand constructor",
)

// ServiceChanges lists what an update touches. Nil fields are left unchanged.
// A non-nil empty UsersInvolved clears the participants.
type ServiceChanges struct {
	Name              *string
	Description       *string
	InterviewDates    []kernel.InterviewDate
	UsersInvolved     []service.Participant
	RemoveMediaIDs    []kernel.UUID
	RemoveDocumentIDs []kernel.UUID
	// Files may carry a replacement coverImage and additional media and documents.
	Files []uploads.File
}

// UpdateServiceCommand edits a service and its assets. Removed and replaced
// assets are reconciled with the blob store after the change is committed.
type UpdateServiceCommand struct {
	serviceID kernel.UUID
	changes   ServiceChanges

	guard guard.ConstructorGuard
}

func NewUpdateServiceCommand(serviceID kernel.UUID, changes ServiceChanges) (UpdateServiceCommand, error) {
	command := UpdateServiceCommand{
		guard: guard.NewConstructorGuard(),
	}

	var nameErr, descriptionErr error
	if changes.Name != nil && strings.TrimSpace(*changes.Name) == "" {
		nameErr = ErrServiceNameIsRequired
	}
	if changes.Description != nil && strings.TrimSpace(*changes.Description) == "" {
		descriptionErr = ErrServiceDescriptionIsRequired
	}
	var datesErr error
	if changes.InterviewDates != nil && len(changes.InterviewDates) == 0 {
		datesErr = ErrInterviewDatesAreRequired
	}

	if err := errors.Join(
		serviceID.Validate(),
		nameErr,
		descriptionErr,
		datesErr,
		checkFileFields(asset.OwnerService, changes.Files),
	); err != nil {
		return UpdateServiceCommand{}, err
	}

	command.serviceID = serviceID
	command.changes = changes
	return command, nil
}

func (c UpdateServiceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateServiceCommandIsNotConstructed)
}

func (c UpdateServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c UpdateServiceCommand) Changes() ServiceChanges {
	return c.changes
}
