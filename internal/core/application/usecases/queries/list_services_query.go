package queries

import (
	"errors"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrListServicesQueryIsNotConstructed = errors.New(
	"ListServicesQuery must be created via NewListServicesQuery constructor",
)

// ListServicesQuery lists every service, newest first.
type ListServicesQuery struct {
	guard guard.ConstructorGuard
}

func NewListServicesQuery() ListServicesQuery {
	return ListServicesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListServicesQuery) Validate() error {
	return q.guard.Validate(ErrListServicesQueryIsNotConstructed)
}

type ListServicesQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Description   string
	CoverImageURL string
	MediaCount    int
	DocumentCount int
	CreatedAt     time.Time
}
