package asset

import "fmt"

// StorageIdentifier addresses a remote object the way the provider does:
// the public id (folder path without extension) and the upload version.
// It is derived purely from an Asset URL and never persisted.
type StorageIdentifier struct {
	PublicID string
	// Version is zero when the URL carried no version segment.
	Version int64
}

func (s StorageIdentifier) HasVersion() bool {
	return s.Version > 0
}

func (s StorageIdentifier) String() string {
	if !s.HasVersion() {
		return s.PublicID
	}
	return fmt.Sprintf("v%d/%s", s.Version, s.PublicID)
}
