package queries

import (
	"errors"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists every user, newest first.
type ListUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewListUsersQuery() ListUsersQuery {
	return ListUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

type ListUsersQueryResponse struct {
	ID        kernel.UUID
	Username  string
	Email     string
	Role      string
	CV        *DocumentView
	CreatedAt time.Time
}
