package services

import (
	"strings"

	"recruitment/internal/core/domain/model/asset"
)

// Verdict is an accepted upload's classification.
type Verdict struct {
	// ResourceKind is the kind the object will be stored as. It is Auto only
	// for fields without a policy, where the blob store decides.
	ResourceKind asset.ResourceKind
	// Policy is meaningful only when Known is true.
	Policy asset.FieldPolicy
	Known  bool
}

// UploadValidator classifies a declared content type against the policy of
// the form field it arrived on. It never inspects file bytes.
type UploadValidator struct{}

func NewUploadValidator() UploadValidator {
	return UploadValidator{}
}

// Validate accepts or rejects one file. Rejections are *asset.ValidationError.
//
// Matching is case sensitive:
//   - document fields accept their allow-list, any text/* type and octet-stream
//   - media fields accept their allow-list only
//   - image fields accept any image/* type
//
// For image and auto policies a non-empty extension must also be one of the
// provider formats. Fields without a policy are accepted as Auto.
func (v UploadValidator) Validate(field, contentType, extension string) (Verdict, error) {
	policy, ok := asset.LookupPolicy(field)
	if !ok {
		return Verdict{ResourceKind: asset.Auto}, nil
	}

	if !v.allowsContentType(policy, contentType) {
		return Verdict{}, rejectContentType(policy, contentType)
	}

	ext := normalizeExtension(extension)
	if ext != "" && policy.EnforcesExtensions() && !policy.AllowsExtension(ext) {
		return Verdict{}, &asset.ValidationError{
			Field:       string(policy.Field()),
			ContentType: contentType,
			Reason:      "file extension ." + ext + " is not supported",
			Allowed:     policy.AllowedExtensions(),
		}
	}

	return Verdict{
		ResourceKind: asset.ResolveAuto(policy.ResourceKind(), contentType),
		Policy:       policy,
		Known:        true,
	}, nil
}

func (v UploadValidator) allowsContentType(policy asset.FieldPolicy, contentType string) bool {
	switch policy.Category() {
	case asset.DocumentCategory:
		return policy.AllowsContentType(contentType) ||
			strings.HasPrefix(contentType, "text/") ||
			contentType == asset.OctetStream
	case asset.MediaCategory:
		return policy.AllowsContentType(contentType)
	case asset.ImageCategory:
		return strings.HasPrefix(contentType, "image/")
	default:
		return false
	}
}

func rejectContentType(policy asset.FieldPolicy, contentType string) *asset.ValidationError {
	verr := &asset.ValidationError{
		Field:       string(policy.Field()),
		ContentType: contentType,
	}
	switch policy.Category() {
	case asset.DocumentCategory:
		verr.Allowed = append(policy.AllowedContentTypes(), "text/*")
	case asset.MediaCategory:
		verr.Allowed = policy.AllowedContentTypes()
	case asset.ImageCategory:
		verr.Reason = "only image/* uploads are accepted"
	}
	return verr
}

func normalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
