// Package assetrecord maps asset references to the column groups the
// repositories embed in their tables. Every asset row keeps its declared
// resource kind; rows written before kinds were recorded hold an empty kind
// and restore as asset.UnknownKind.
package assetrecord

import (
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// Columns is a required asset reference embedded with a prefix.
// Field names carry an Asset prefix so they never shadow the owning row's ID.
type Columns struct {
	AssetID      uuid.UUID `gorm:"column:id;type:uuid"`
	URL          string    `gorm:"column:url;type:text;not null;index"`
	ResourceKind string    `gorm:"column:resource_kind;type:varchar(16);not null;default:''"`
	OriginalName string    `gorm:"column:original_name;type:varchar(512)"`
	UploadedAt   time.Time `gorm:"column:uploaded_at;not null"`
}

// OptionalColumns is a nullable asset reference embedded with a prefix.
type OptionalColumns struct {
	AssetID      *uuid.UUID `gorm:"column:id;type:uuid"`
	URL          *string    `gorm:"column:url;type:text;index"`
	ResourceKind *string    `gorm:"column:resource_kind;type:varchar(16)"`
	OriginalName *string    `gorm:"column:original_name;type:varchar(512)"`
	UploadedAt   *time.Time `gorm:"column:uploaded_at"`
}

// FromDomain converts an asset to its columns.
func FromDomain(a *asset.Asset) Columns {
	return Columns{
		AssetID:      a.ID().Bytes(),
		URL:          a.URL(),
		ResourceKind: KindToColumn(a.ResourceKind()),
		OriginalName: a.OriginalName(),
		UploadedAt:   a.UploadedAt(),
	}
}

// ToDomain restores an asset from its columns.
func ToDomain(c Columns) (*asset.Asset, error) {
	id, err := kernel.UUIDFromBytes(c.AssetID[:])
	if err != nil {
		return nil, err
	}
	return asset.RestoreAsset(id, c.URL, asset.ParseResourceKind(c.ResourceKind), c.OriginalName, c.UploadedAt)
}

// OptionalFromDomain converts a possibly nil asset.
func OptionalFromDomain(a *asset.Asset) OptionalColumns {
	if a == nil {
		return OptionalColumns{}
	}
	c := FromDomain(a)
	return OptionalColumns{
		AssetID:      &c.AssetID,
		URL:          &c.URL,
		ResourceKind: &c.ResourceKind,
		OriginalName: &c.OriginalName,
		UploadedAt:   &c.UploadedAt,
	}
}

// OptionalToDomain returns nil when no asset is stored.
func OptionalToDomain(c OptionalColumns) (*asset.Asset, error) {
	if c.AssetID == nil || c.URL == nil {
		return nil, nil
	}
	required := Columns{AssetID: *c.AssetID, URL: *c.URL}
	if c.ResourceKind != nil {
		required.ResourceKind = *c.ResourceKind
	}
	if c.OriginalName != nil {
		required.OriginalName = *c.OriginalName
	}
	if c.UploadedAt != nil {
		required.UploadedAt = *c.UploadedAt
	}
	return ToDomain(required)
}

// KindToColumn stores UnknownKind as the empty string.
func KindToColumn(kind asset.ResourceKind) string {
	if !kind.IsStorable() {
		return ""
	}
	return kind.String()
}
