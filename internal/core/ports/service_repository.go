// Package ports defines the contracts between the recruitment core and its
// infrastructure: repositories, the unit of work, the remote blob store and
// the asset lifecycle observer.
package ports

import (
	"context"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
)

// ServiceRepository defines the persistence contract for service aggregates,
// including their asset entries, interview dates and participants.
type ServiceRepository interface {
	// Add persists a new service with all of its child records.
	Add(ctx context.Context, aggregate *service.Service) error

	// Update replaces the stored state of an existing service. Child records
	// that are no longer part of the aggregate are removed.
	Update(ctx context.Context, aggregate *service.Service) error

	// Get returns the complete aggregate or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)

	// Delete removes the service and its child records. Deleting a missing
	// service returns an errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error
}
