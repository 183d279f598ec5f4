package application

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	ErrCVIsRequired    = errs.NewValueIsRequiredError("cv")
	// ErrApplicationIsNotConstructed is returned when using an improperly initialized Application.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")
)

// Application is a candidate's request to interview for a service. It owns
// the CV asset, which may be shared by reference with the applicant's user
// profile.
//
// Business rules:
//   - name, email, service id and a CV are required
//   - the interview date is a single slot with date and time
//   - new applications start pending
//   - status moves pending -> approved|rejected and between approved and rejected
type Application struct {
	id            kernel.UUID
	name          string
	email         string
	serviceID     kernel.UUID
	interviewDate kernel.InterviewDate
	cv            *asset.Asset
	status        Status
	appliedAt     time.Time
	guard         guard.ConstructorGuard
}

func NewApplication(
	id kernel.UUID,
	name, email string,
	serviceID kernel.UUID,
	interviewDate kernel.InterviewDate,
	cv *asset.Asset,
	appliedAt time.Time,
) (*Application, error) {
	return RestoreApplication(id, name, email, serviceID, interviewDate, cv, Pending, appliedAt)
}

func RestoreApplication(
	id kernel.UUID,
	name, email string,
	serviceID kernel.UUID,
	interviewDate kernel.InterviewDate,
	cv *asset.Asset,
	status Status,
	appliedAt time.Time,
) (*Application, error) {
	a := &Application{
		guard:     guard.NewConstructorGuard(),
		appliedAt: appliedAt.UTC(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setServiceID(serviceID),
		a.setInterviewDate(interviewDate),
		a.setCV(cv),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

func (a *Application) ID() kernel.UUID {
	return a.id
}

func (a *Application) Name() string {
	return a.name
}

func (a *Application) Email() string {
	return a.email
}

func (a *Application) ServiceID() kernel.UUID {
	return a.serviceID
}

func (a *Application) InterviewDate() kernel.InterviewDate {
	return a.interviewDate
}

func (a *Application) CV() *asset.Asset {
	return a.cv
}

func (a *Application) Status() Status {
	return a.status
}

func (a *Application) AppliedAt() time.Time {
	return a.appliedAt
}

// ChangeStatus applies an administrator decision. It reports whether the
// status actually changed.
func (a *Application) ChangeStatus(next Status) (bool, error) {
	status, err := a.status.TransitionTo(next)
	if err != nil {
		return false, err
	}
	changed := status != a.status
	a.status = status
	return changed, nil
}

func (a *Application) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}

func (a *Application) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q: %w", email, err))
	}
	a.email = email
	return nil
}

func (a *Application) setServiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("serviceId", err)
	}
	a.serviceID = id
	return nil
}

func (a *Application) setInterviewDate(d kernel.InterviewDate) error {
	if err := d.Validate(); err != nil {
		return err
	}
	a.interviewDate = d
	return nil
}

func (a *Application) setCV(cv *asset.Asset) error {
	if cv == nil {
		return ErrCVIsRequired
	}
	if err := cv.Validate(); err != nil {
		return err
	}
	a.cv = cv
	return nil
}

func (a *Application) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
