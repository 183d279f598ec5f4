// Package blobstore holds the object layout shared by the BlobStore
// adapters. An object lives under <kind>/<folder>/<uuid> and is addressed by
// clients through the delivery URL the URL codec builds for it.
package blobstore

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/ports"

	"github.com/google/uuid"
)

// Metadata keys stored next to each object.
const (
	MetaOriginalName = "original-name"
	MetaExtension    = "extension"
	MetaTransform    = "transform"
)

// NewPublicID returns a fresh public id inside folder.
func NewPublicID(folder string) string {
	return path.Join(strings.Trim(folder, "/"), uuid.NewString())
}

// ObjectKey is the bucket key of a public id stored as kind.
func ObjectKey(kind asset.ResourceKind, publicID string) string {
	return kind.String() + "/" + publicID
}

var extensionPattern = regexp.MustCompile(`^\w+$`)

// Extension is the lowercase extension of filename without the dot. It is
// empty unless the extension is a single word of ASCII letters, digits or
// underscores, the only suffix the URL codec strips from a public id.
func Extension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if !extensionPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// StoredKind narrows the requested kind of req to the kind it is stored as.
func StoredKind(req ports.PutRequest) (asset.ResourceKind, error) {
	kind := asset.ResolveAuto(req.ResourceKind, req.ContentType)
	if err := kind.ValidateStorable(); err != nil {
		return asset.UnknownKind, err
	}
	return kind, nil
}

// Metadata is the user metadata recorded with an object. The original name
// is path-escaped since object metadata travels as ASCII headers.
func Metadata(req ports.PutRequest) map[string]string {
	meta := map[string]string{
		MetaOriginalName: url.PathEscape(req.Filename),
		MetaExtension:    Extension(req.Filename),
	}
	if t := req.Transform; t != nil {
		meta[MetaTransform] = fmt.Sprintf("w_%d,c_%s,q_%s", t.Width, t.Crop, t.Quality)
	}
	return meta
}
