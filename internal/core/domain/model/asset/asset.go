package asset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"
	"recruitment/internal/pkg/guard"
)

var (
	// ErrURLIsRequired is returned when an asset is built without a storage URL.
	ErrURLIsRequired = errs.NewValueIsRequiredError("url")
	// ErrAssetIsNotConstructed is returned when using an Asset that bypassed its constructors.
	ErrAssetIsNotConstructed = errors.New("Asset must be created via NewAsset or RestoreAsset constructor")
)

// Asset is a remote object referenced by the application: the provider URL,
// the resource kind it was stored as, and the filename the client uploaded.
//
// Assets are immutable value-like entities. The id is local to the owning
// aggregate and lets clients address a single media or document entry.
//
// Business rules:
//   - URL must be non-empty and absolute (http or https)
//   - a new Asset must carry a storable kind (raw, image or video)
//   - a restored Asset may carry UnknownKind for legacy records
type Asset struct {
	id           kernel.UUID
	url          string
	kind         ResourceKind
	originalName string
	uploadedAt   time.Time
	guard        guard.ConstructorGuard
}

// NewAsset creates an Asset for a freshly uploaded object.
func NewAsset(id kernel.UUID, url string, kind ResourceKind, originalName string, uploadedAt time.Time) (*Asset, error) {
	a := &Asset{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setID(id),
		a.setURL(url),
		kind.ValidateStorable(),
	); err != nil {
		return nil, err
	}

	a.kind = kind
	a.originalName = originalName
	a.uploadedAt = uploadedAt.UTC()
	return a, nil
}

// RestoreAsset rebuilds an Asset from persistence. Unlike NewAsset it accepts
// UnknownKind so records written before kinds were stored can still be loaded.
// Auto is never a valid stored kind.
func RestoreAsset(id kernel.UUID, url string, kind ResourceKind, originalName string, uploadedAt time.Time) (*Asset, error) {
	a := &Asset{guard: guard.NewConstructorGuard()}

	var kindErr error
	if kind == Auto {
		kindErr = kind.ValidateStorable()
	}

	if err := errors.Join(
		a.setID(id),
		a.setURL(url),
		kindErr,
	); err != nil {
		return nil, err
	}

	a.kind = kind
	a.originalName = originalName
	a.uploadedAt = uploadedAt.UTC()
	return a, nil
}

func (a *Asset) Validate() error {
	if a == nil {
		return ErrAssetIsNotConstructed
	}
	return a.guard.Validate(ErrAssetIsNotConstructed)
}

func (a *Asset) ID() kernel.UUID {
	return a.id
}

func (a *Asset) URL() string {
	return a.url
}

func (a *Asset) ResourceKind() ResourceKind {
	return a.kind
}

func (a *Asset) OriginalName() string {
	return a.originalName
}

func (a *Asset) UploadedAt() time.Time {
	return a.uploadedAt
}

// SameObject reports whether both assets point at the same remote object.
func (a *Asset) SameObject(other *Asset) bool {
	if a == nil || other == nil {
		return false
	}
	return a.url == other.url
}

// CopyAs returns a new Asset with a fresh id referencing the same remote
// object. Used when one aggregate adopts another's stored file by reference.
func (a *Asset) CopyAs(id kernel.UUID) (*Asset, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return RestoreAsset(id, a.url, a.kind, a.originalName, a.uploadedAt)
}

func (a *Asset) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Asset) setURL(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrURLIsRequired
	}
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return errs.NewValueIsInvalidErrorWithCause("url", fmt.Errorf("%q is not an absolute http(s) URL", url))
	}
	a.url = url
	return nil
}
