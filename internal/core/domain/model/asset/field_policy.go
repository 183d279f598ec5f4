package asset

import "slices"

// Field is the multipart form field an upload arrived on.
type Field string

const (
	FieldCV         Field = "cv"
	FieldDocuments  Field = "documents"
	FieldMedia      Field = "media"
	FieldCoverImage Field = "coverImage"
)

// Category groups fields that share content-type rules.
type Category int

const (
	// DocumentCategory accepts the office/PDF allow-list plus text/* and octet-stream.
	DocumentCategory Category = iota + 1
	// MediaCategory accepts the image/video allow-list only.
	MediaCategory
	// ImageCategory accepts any image/* content type.
	ImageCategory
)

// Owner is the kind of entity an uploaded asset will belong to.
type Owner int

const (
	OwnerService Owner = iota + 1
	OwnerApplication
	OwnerUser
)

// Transform carries the delivery transformation hints forwarded to the blob store.
type Transform struct {
	Width   int
	Crop    string
	Quality string
}

// FieldPolicy is the immutable routing and validation rule set of one field.
type FieldPolicy struct {
	field        Field
	folder       string
	kind         ResourceKind
	category     Category
	contentTypes []string
	extensions   []string
	transform    *Transform
	maxCount     int
}

// DocumentContentTypes lists the MIME types accepted for cv and documents.
// Browsers are known to tag .docx as application/zip or octet-stream.
func DocumentContentTypes() []string {
	return []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-word.document.macroenabled.12",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"application/vnd.ms-powerpoint",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
		"application/zip",
		OctetStream,
		"text/plain",
	}
}

// MediaContentTypes lists the MIME types accepted for media galleries.
func MediaContentTypes() []string {
	return []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
		"video/mp4",
		"video/quicktime",
		"video/webm",
	}
}

// OctetStream is the generic content type some browsers send for office documents.
const OctetStream = "application/octet-stream"

const (
	applicationCVFolder = "applications/cv"
	userCVFolder        = "users/cv"
)

func getFieldPolicies() map[Field]FieldPolicy {
	return map[Field]FieldPolicy{
		FieldCV: {
			field:        FieldCV,
			folder:       applicationCVFolder,
			kind:         Raw,
			category:     DocumentCategory,
			contentTypes: DocumentContentTypes(),
			extensions:   []string{"pdf", "doc", "docx", "zip"},
			maxCount:     1,
		},
		FieldDocuments: {
			field:        FieldDocuments,
			folder:       "services/documents",
			kind:         Raw,
			category:     DocumentCategory,
			contentTypes: DocumentContentTypes(),
			extensions:   []string{"pdf", "doc", "docx"},
			maxCount:     5,
		},
		FieldMedia: {
			field:        FieldMedia,
			folder:       "services/media",
			kind:         Auto,
			category:     MediaCategory,
			contentTypes: MediaContentTypes(),
			extensions:   []string{"jpg", "jpeg", "png", "gif", "webp", "mp4", "mov", "webm"},
			maxCount:     10,
		},
		FieldCoverImage: {
			field:        FieldCoverImage,
			folder:       "services/coverImage",
			kind:         Image,
			category:     ImageCategory,
			contentTypes: nil,
			extensions:   []string{"jpg", "jpeg", "png", "gif", "webp"},
			transform:    &Transform{Width: 1200, Crop: "limit", Quality: "auto"},
			maxCount:     1,
		},
	}
}

// LookupPolicy returns the policy bound to field. The boolean is false for
// fields outside the table; callers treat those as accept-all.
func LookupPolicy(field string) (FieldPolicy, bool) {
	policy, ok := getFieldPolicies()[Field(field)]
	return policy, ok
}

// KnownFields returns the fields that have a policy, in a stable order.
func KnownFields() []Field {
	return []Field{FieldCV, FieldDocuments, FieldMedia, FieldCoverImage}
}

// Fields returns the upload fields an owner keeps, in a stable order.
func (o Owner) Fields() []Field {
	switch o {
	case OwnerService:
		return []Field{FieldCoverImage, FieldMedia, FieldDocuments}
	case OwnerApplication, OwnerUser:
		return []Field{FieldCV}
	default:
		return nil
	}
}

// CheckField rejects a file posted on a field the owner does not keep. Such
// a file would be stored with nothing referencing it.
func (o Owner) CheckField(field string) error {
	fields := o.Fields()
	if slices.Contains(fields, Field(field)) {
		return nil
	}
	allowed := make([]string, len(fields))
	for i, f := range fields {
		allowed[i] = string(f)
	}
	return &ValidationError{
		Field:   field,
		Reason:  "unexpected file field",
		Allowed: allowed,
	}
}

// ForOwner returns the policy adjusted for the owning entity. Only the cv
// folder differs: application CVs and user CVs live in separate folders.
func (p FieldPolicy) ForOwner(owner Owner) FieldPolicy {
	if p.field == FieldCV && owner == OwnerUser {
		p.folder = userCVFolder
	}
	return p
}

func (p FieldPolicy) Field() Field {
	return p.field
}

func (p FieldPolicy) Folder() string {
	return p.folder
}

func (p FieldPolicy) ResourceKind() ResourceKind {
	return p.kind
}

func (p FieldPolicy) Category() Category {
	return p.category
}

// AllowedContentTypes returns a copy of the exact-match allow-list.
// It is empty for image-only fields, which match on the image/ prefix.
func (p FieldPolicy) AllowedContentTypes() []string {
	return slices.Clone(p.contentTypes)
}

// AllowedExtensions returns a copy of the formats the provider accepts.
func (p FieldPolicy) AllowedExtensions() []string {
	return slices.Clone(p.extensions)
}

// Transform returns the delivery transformation, or nil when none applies.
func (p FieldPolicy) Transform() *Transform {
	if p.transform == nil {
		return nil
	}
	t := *p.transform
	return &t
}

// MaxCount is the number of files one request may carry for this field.
func (p FieldPolicy) MaxCount() int {
	return p.maxCount
}

// AllowsContentType reports whether contentType is in the exact allow-list.
func (p FieldPolicy) AllowsContentType(contentType string) bool {
	return slices.Contains(p.contentTypes, contentType)
}

// AllowsExtension reports whether ext (lowercase, without dot) is a provider format.
func (p FieldPolicy) AllowsExtension(ext string) bool {
	return slices.Contains(p.extensions, ext)
}

// EnforcesExtensions is true for policies whose formats the provider checks
// on upload (image and auto kinds). Raw uploads are stored as-is.
func (p FieldPolicy) EnforcesExtensions() bool {
	return p.kind == Image || p.kind == Auto
}
