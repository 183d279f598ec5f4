// Package errs provides the standardized error types shared by every layer of
// the recruitment backend.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// The HTTP adapter maps the sentinels to status codes, so domain code only has
// to pick the right constructor.
package errs
