package queries

import (
	"errors"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrListApplicationsQueryIsNotConstructed = errors.New(
	"ListApplicationsQuery must be created via NewListApplicationsQuery constructor",
)

// ListApplicationsQuery lists applications, optionally for one service only.
type ListApplicationsQuery struct {
	serviceID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListApplicationsQuery(serviceID *kernel.UUID) (ListApplicationsQuery, error) {
	q := ListApplicationsQuery{guard: guard.NewConstructorGuard()}
	if serviceID != nil {
		if err := serviceID.Validate(); err != nil {
			return ListApplicationsQuery{}, err
		}
		id := *serviceID
		q.serviceID = &id
	}
	return q, nil
}

func (q ListApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrListApplicationsQueryIsNotConstructed)
}

func (q ListApplicationsQuery) ServiceID() *kernel.UUID {
	return q.serviceID
}

type ListApplicationsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Email         string
	ServiceID     kernel.UUID
	InterviewDate InterviewDateView
	CV            DocumentView
	Status        string
	AppliedAt     time.Time
}
