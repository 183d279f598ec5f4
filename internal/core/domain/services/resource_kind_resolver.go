package services

import (
	"errors"
	"fmt"
	"strings"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/pkg/errs"
)

// ErrResourceKindUnresolved is returned when a legacy asset has no usable
// kind and the default fallback is disabled.
var ErrResourceKindUnresolved = errors.New("resource kind cannot be determined")

var videoSuffixes = []string{".mp4", ".mov", ".webm"}

// FallbackReason names the rule that supplied a kind for a legacy asset.
type FallbackReason string

const (
	FallbackNone        FallbackReason = ""
	FallbackField       FallbackReason = "field"
	FallbackVideoSuffix FallbackReason = "video_suffix"
	FallbackDefault     FallbackReason = "default"
)

// KindResolution is the kind to delete an asset as, and how it was chosen.
type KindResolution struct {
	Kind   asset.ResourceKind
	Reason FallbackReason
}

// IsFallback reports whether the declared kind was not used.
func (r KindResolution) IsFallback() bool {
	return r.Reason != FallbackNone
}

// ResourceKindResolver picks the kind a stored asset must be deleted as.
// Assets written before kinds were recorded carry UnknownKind; for them the
// resolver applies, in order: the field's own kind when it is fixed
// (documents and cv are raw, the cover image is image), a video file suffix
// on the URL, then the configured default. A default of UnknownKind disables
// the last step.
type ResourceKindResolver struct {
	defaultKind asset.ResourceKind
}

func NewResourceKindResolver(defaultKind asset.ResourceKind) (ResourceKindResolver, error) {
	if defaultKind != asset.UnknownKind && defaultKind != asset.Image && defaultKind != asset.Video {
		return ResourceKindResolver{}, errs.NewValueIsInvalidErrorWithCause(
			"legacy kind fallback",
			fmt.Errorf("%s is not image, video or none", defaultKind),
		)
	}
	return ResourceKindResolver{defaultKind: defaultKind}, nil
}

// ParseLegacyKindFallback maps image, video or none to a resolver default.
func ParseLegacyKindFallback(s string) (asset.ResourceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "image":
		return asset.Image, nil
	case "video":
		return asset.Video, nil
	case "none":
		return asset.UnknownKind, nil
	default:
		return asset.UnknownKind, errs.NewValueIsInvalidErrorWithCause(
			"legacy kind fallback",
			fmt.Errorf("%q is not image, video or none", s),
		)
	}
}

func (r ResourceKindResolver) DefaultKind() asset.ResourceKind {
	return r.defaultKind
}

// Resolve returns the kind to use for an asset held under field.
func (r ResourceKindResolver) Resolve(declared asset.ResourceKind, field asset.Field, rawURL string) (KindResolution, error) {
	if declared.IsStorable() {
		return KindResolution{Kind: declared}, nil
	}

	if policy, ok := asset.LookupPolicy(string(field)); ok && policy.ResourceKind().IsStorable() {
		return KindResolution{Kind: policy.ResourceKind(), Reason: FallbackField}, nil
	}

	if hasVideoSuffix(rawURL) {
		return KindResolution{Kind: asset.Video, Reason: FallbackVideoSuffix}, nil
	}

	if r.defaultKind == asset.UnknownKind {
		return KindResolution{}, fmt.Errorf("%w: declared %s for %s", ErrResourceKindUnresolved, declared, field)
	}
	return KindResolution{Kind: r.defaultKind, Reason: FallbackDefault}, nil
}

func hasVideoSuffix(rawURL string) bool {
	rawURL, _, _ = strings.Cut(rawURL, "#")
	rawURL, _, _ = strings.Cut(rawURL, "?")
	lower := strings.ToLower(rawURL)
	for _, suffix := range videoSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}
