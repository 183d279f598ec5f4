// Package asset models the remote files the recruitment backend stores with its
// object-storage provider.
//
// The package includes:
//   - ResourceKind: the provider resource class (raw, image, video, auto)
//   - FieldPolicy: the per-form-field routing and validation rules
//   - Asset: a stored object reference (URL, kind, original filename)
//   - StorageIdentifier: the public id and version derived from an asset URL
//   - UploadLimits: size and count bounds applied before any storage write
//
// Key business rules:
//   - auto is only valid on a policy; stored assets are raw, image or video
//   - legacy records may carry an unknown kind and are resolved on cleanup
//   - fields without a policy are accepted as-is with kind auto
package asset
