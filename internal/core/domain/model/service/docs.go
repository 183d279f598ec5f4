// Package service provides the Service aggregate: a recruitment posting with a
// cover image, a media gallery, downloadable documents, interview slots and
// the participants running the interviews.
//
// Mutations that detach remote assets (replacing the cover image, removing
// media or documents) return the detached assets. The aggregate never talks
// to the blob store; callers reconcile the returned assets after persisting.
package service
