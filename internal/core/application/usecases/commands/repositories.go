// Package commands contains the write use cases of the recruitment backend.
// Every command is constructor-guarded and every handler follows the same
// pattern: validate, store new remote assets, persist within a unit of work,
// then reconcile remote assets the change detached.
package commands

import (
	"context"
	"errors"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/uploads"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// ServiceUoW manages transactions for service-only operations.
	ServiceUoW interface {
		TxManager
		ServiceRepoFactory
	}

	ServiceUoWFactory interface {
		Create() ServiceUoW
	}

	// ApplicationUoW spans applications and the services and users they
	// reference: creating an application checks the service and may copy a
	// user's CV, deleting one checks whether a user still shares the CV.
	ApplicationUoW interface {
		TxManager
		ApplicationRepoFactory
		ServiceRepoFactory
		UserRepoFactory
	}

	ApplicationUoWFactory interface {
		Create() ApplicationUoW
	}

	// UserUoW spans users and the applications that may share their CV.
	UserUoW interface {
		TxManager
		UserRepoFactory
		ApplicationRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}
)

// Remote asset collaborators of the handlers.
type (
	// AssetUploader validates and stores the files of one request.
	AssetUploader interface {
		Upload(ctx context.Context, owner asset.Owner, files []uploads.File) (uploads.Uploaded, error)
	}

	// AssetReconciler deletes detached remote assets on a best-effort basis.
	AssetReconciler interface {
		Reconcile(ctx context.Context, set cleanup.AssetSet) cleanup.Report
	}
)

// checkFileFields rejects files on fields the owner does not keep, before
// anything reaches the uploader.
func checkFileFields(owner asset.Owner, files []uploads.File) error {
	var all []error
	for _, f := range files {
		all = append(all, owner.CheckField(f.Field))
	}
	return errors.Join(all...)
}

// compensate removes assets stored for a request whose database change did
// not go through. The report is discarded; the reconciler logs every outcome.
func compensate(ctx context.Context, reconciler AssetReconciler, uploaded uploads.Uploaded) {
	if uploaded.IsEmpty() {
		return
	}
	_ = reconciler.Reconcile(ctx, uploaded.AssetSet())
}
