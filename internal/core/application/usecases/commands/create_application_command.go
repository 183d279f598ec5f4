package commands

import (
	"errors"
	"strings"

	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	ErrCreateApplicationCommandIsNotConstructed = errors.New(
		"CreateApplicationCommand must be created via NewCreateApplicationCommand constructor",
	)
	ErrApplicantNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrApplicantEmailIsRequired = errs.NewValueIsRequiredError("email")
	ErrApplicationCVIsRequired  = errs.NewValueIsRequiredError("cv")
	ErrApplicationCVIsAmbiguous = errs.NewValueIsInvalidErrorWithCause(
		"cv",
		errors.New("either upload a cv or reference a user profile, not both"),
	)
)

// CreateApplicationCommand files a candidate's application to a service.
// The CV comes either from a "cv" file of the request or, when userID is
// set, from that user's stored profile.
type CreateApplicationCommand struct {
	applicationID kernel.UUID
	name          string
	email         string
	serviceID     kernel.UUID
	interviewDate kernel.InterviewDate
	userID        *kernel.UUID
	files         []uploads.File

	guard guard.ConstructorGuard
}

func NewCreateApplicationCommand(
	name, email string,
	serviceID kernel.UUID,
	interviewDate kernel.InterviewDate,
	userID *kernel.UUID,
	files []uploads.File,
) (CreateApplicationCommand, error) {
	command := CreateApplicationCommand{
		applicationID: kernel.NewUUID(),
		serviceID:     serviceID,
		interviewDate: interviewDate,
		files:         files,
		guard:         guard.NewConstructorGuard(),
	}

	var nameErr, emailErr, userErr error
	if command.name = strings.TrimSpace(name); command.name == "" {
		nameErr = ErrApplicantNameIsRequired
	}
	if command.email = strings.TrimSpace(email); command.email == "" {
		emailErr = ErrApplicantEmailIsRequired
	}
	if userID != nil {
		userErr = userID.Validate()
		id := *userID
		command.userID = &id
	}

	if err := errors.Join(
		nameErr,
		emailErr,
		serviceID.Validate(),
		interviewDate.Validate(),
		userErr,
		requireCVSource(files, userID != nil),
		checkFileFields(asset.OwnerApplication, files),
	); err != nil {
		return CreateApplicationCommand{}, err
	}

	return command, nil
}

func (c CreateApplicationCommand) Validate() error {
	return c.guard.Validate(ErrCreateApplicationCommandIsNotConstructed)
}

func (c CreateApplicationCommand) ApplicationID() kernel.UUID {
	return c.applicationID
}

func (c CreateApplicationCommand) Name() string {
	return c.name
}

func (c CreateApplicationCommand) Email() string {
	return c.email
}

func (c CreateApplicationCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

func (c CreateApplicationCommand) InterviewDate() kernel.InterviewDate {
	return c.interviewDate
}

// UserID is the profile to copy the CV from, or nil.
func (c CreateApplicationCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c CreateApplicationCommand) Files() []uploads.File {
	return c.files
}

func requireCVSource(files []uploads.File, fromProfile bool) error {
	uploaded := false
	for _, f := range files {
		if f.Field == string(asset.FieldCV) {
			uploaded = true
			break
		}
	}
	switch {
	case uploaded && fromProfile:
		return ErrApplicationCVIsAmbiguous
	case !uploaded && !fromProfile:
		return ErrApplicationCVIsRequired
	default:
		return nil
	}
}
