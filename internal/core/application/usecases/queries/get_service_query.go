package queries

import (
	"errors"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrGetServiceQueryIsNotConstructed = errors.New(
	"GetServiceQuery must be created via NewGetServiceQuery constructor",
)

// GetServiceQuery fetches one service with all of its assets.
type GetServiceQuery struct {
	serviceID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetServiceQuery(serviceID kernel.UUID) (GetServiceQuery, error) {
	if err := serviceID.Validate(); err != nil {
		return GetServiceQuery{}, err
	}
	return GetServiceQuery{serviceID: serviceID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetServiceQuery) Validate() error {
	return q.guard.Validate(ErrGetServiceQueryIsNotConstructed)
}

func (q GetServiceQuery) ServiceID() kernel.UUID {
	return q.serviceID
}

type GetServiceQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Description    string
	CoverImage     AssetView
	Media          []AssetView
	Documents      []DocumentView
	InterviewDates []InterviewDateView
	UsersInvolved  []ParticipantView
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
