package asset

import (
	"fmt"
	"strings"

	"recruitment/internal/pkg/errs"
)

// ResourceKind is the storage provider's resource class for an object.
// Auto is only meaningful on a FieldPolicy; a stored Asset is Raw, Image or Video.
type ResourceKind int

const (
	// UnknownKind marks legacy records that predate explicit kind storage.
	UnknownKind ResourceKind = iota
	Raw
	Image
	Video
	Auto
)

func getResourceKindStrings() map[ResourceKind]string {
	return map[ResourceKind]string{
		UnknownKind: "unknown",
		Raw:         "raw",
		Image:       "image",
		Video:       "video",
		Auto:        "auto",
	}
}

// ParseResourceKind maps a persisted or provider string to a ResourceKind.
// Unrecognized values yield UnknownKind rather than an error so legacy
// records can still be cleaned up through the fallback resolver.
func ParseResourceKind(s string) ResourceKind {
	for kind, str := range getResourceKindStrings() {
		if kind != UnknownKind && str == s {
			return kind
		}
	}
	return UnknownKind
}

func (k ResourceKind) String() string {
	if str, ok := getResourceKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// IsStorable reports whether k may be recorded on a stored Asset.
func (k ResourceKind) IsStorable() bool {
	return k == Raw || k == Image || k == Video
}

// ValidateStorable returns an invalid value error for Auto and UnknownKind.
func (k ResourceKind) ValidateStorable() error {
	if !k.IsStorable() {
		return errs.NewValueIsInvalidErrorWithCause(
			"resource kind",
			fmt.Errorf("%s is not a storable resource kind", k),
		)
	}
	return nil
}

// ResolveAuto narrows an Auto policy kind using the declared content type:
// video/* becomes Video, image/* becomes Image and everything else Raw.
// Non-auto kinds are returned unchanged.
func ResolveAuto(kind ResourceKind, contentType string) ResourceKind {
	if kind != Auto {
		return kind
	}
	switch {
	case strings.HasPrefix(contentType, "video/"):
		return Video
	case strings.HasPrefix(contentType, "image/"):
		return Image
	default:
		return Raw
	}
}

