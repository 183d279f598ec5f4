package commands

import (
	"errors"
	"strings"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	ErrCreateServiceCommandIsNotConstructed = errors.New(
		"CreateServiceCommand must be created via NewCreateServiceCommand constructor",
	)
	ErrServiceNameIsRequired        = errs.NewValueIsRequiredError("serviceName")
	ErrServiceDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	ErrInterviewDatesAreRequired    = errs.NewValueIsRequiredError("interviewDates")
	ErrCoverImageIsRequired         = errs.NewValueIsRequiredError("coverImage")
)

// CreateServiceCommand publishes a new service with its cover image, media
// gallery and documents.
//
// Example:
//
//	cmd, err := NewCreateServiceCommand("Backend Engineer", "Go services", dates, nil, files)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Println("created", cmd.ServiceID())
type CreateServiceCommand struct {
	serviceID      kernel.UUID
	name           string
	description    string
	interviewDates []kernel.InterviewDate
	usersInvolved  []service.Participant
	files          []uploads.File

	guard guard.ConstructorGuard
}

// NewCreateServiceCommand requires a name, a description, at least one
// interview date and a coverImage among files. Files may only be posted on
// coverImage, media and documents.
func NewCreateServiceCommand(
	name, description string,
	interviewDates []kernel.InterviewDate,
	usersInvolved []service.Participant,
	files []uploads.File,
) (CreateServiceCommand, error) {
	command := CreateServiceCommand{
		serviceID:     kernel.NewUUID(),
		usersInvolved: usersInvolved,
		files:         files,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDescription(description),
		command.setInterviewDates(interviewDates),
		requireCoverImage(files),
		checkFileFields(asset.OwnerService, files),
	); err != nil {
		return CreateServiceCommand{}, err
	}

	return command, nil
}

func (c CreateServiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateServiceCommandIsNotConstructed)
}

func (c CreateServiceCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c CreateServiceCommand) Name() string {
	return c.name
}

func (c CreateServiceCommand) Description() string {
	return c.description
}

func (c CreateServiceCommand) InterviewDates() []kernel.InterviewDate {
	return c.interviewDates
}

func (c CreateServiceCommand) UsersInvolved() []service.Participant {
	return c.usersInvolved
}

func (c CreateServiceCommand) Files() []uploads.File {
	return c.files
}

func (c *CreateServiceCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrServiceNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateServiceCommand) setDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrServiceDescriptionIsRequired
	}
	c.description = description
	return nil
}

func (c *CreateServiceCommand) setInterviewDates(dates []kernel.InterviewDate) error {
	if len(dates) == 0 {
		return ErrInterviewDatesAreRequired
	}
	c.interviewDates = dates
	return nil
}

func requireCoverImage(files []uploads.File) error {
	for _, f := range files {
		if f.Field == string(asset.FieldCoverImage) {
			return nil
		}
	}
	return ErrCoverImageIsRequired
}
