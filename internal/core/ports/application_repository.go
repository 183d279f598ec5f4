package ports

import (
	"context"

	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for applications.
type ApplicationRepository interface {
	Add(ctx context.Context, aggregate *application.Application) error
	Update(ctx context.Context, aggregate *application.Application) error
	// Get returns the application or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*application.Application, error)
	Delete(ctx context.Context, id kernel.UUID) error

	// CountByCVURL counts applications whose CV points at url. A CV copied
	// from a user profile shares its URL with that profile.
	CountByCVURL(ctx context.Context, url string) (int64, error)
}
