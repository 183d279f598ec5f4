// Package services provides the stateless domain services of the asset
// lifecycle:
//   - UploadValidator: classifies a declared content type against the policy
//     of its form field before anything is written to storage
//   - URLCodec: derives storage identifiers from asset URLs and builds
//     filename-preserving download URLs
//   - ResourceKindResolver: picks the kind a legacy asset is deleted as
//
// None of them perform I/O.
package services
