package ports

import (
	"time"

	"recruitment/internal/core/domain/model/asset"
)

// DeleteOutcome classifies one cleanup attempt for metrics.
type DeleteOutcome string

const (
	DeleteOutcomeDeleted       DeleteOutcome = "deleted"
	DeleteOutcomeAlreadyAbsent DeleteOutcome = "already_absent"
	DeleteOutcomeFailed        DeleteOutcome = "failed"
	DeleteOutcomeUndecodable   DeleteOutcome = "undecodable"
	DeleteOutcomeUnresolved    DeleteOutcome = "unresolved_kind"
)

// AssetObserver receives asset lifecycle events. Implementations must be
// safe for concurrent use; cleanup reports deletes from several goroutines.
type AssetObserver interface {
	RecordUpload(field asset.Field, kind asset.ResourceKind, size int64, err error)
	RecordDelete(field asset.Field, kind asset.ResourceKind, outcome DeleteOutcome, elapsed time.Duration)
	RecordKindFallback(field asset.Field, reason string)
}

// NopAssetObserver discards every event.
type NopAssetObserver struct{}

func (NopAssetObserver) RecordUpload(asset.Field, asset.ResourceKind, int64, error) {}

func (NopAssetObserver) RecordDelete(asset.Field, asset.ResourceKind, DeleteOutcome, time.Duration) {}

func (NopAssetObserver) RecordKindFallback(asset.Field, string) {}
