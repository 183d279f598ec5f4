package ports

import (
	"context"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	Add(ctx context.Context, aggregate *user.User) error
	Update(ctx context.Context, aggregate *user.User) error
	// Get returns the user or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// CountByCVURL counts users whose stored CV points at url.
	CountByCVURL(ctx context.Context, url string) (int64, error)
}
