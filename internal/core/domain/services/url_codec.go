package services

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/pkg/errs"
)

var (
	versionPattern   = regexp.MustCompile(`/upload/v(\d+)/`)
	publicIDPattern  = regexp.MustCompile(`^.*/(?:image|video|raw)/upload/(?:v\d+/)?(.+?)(?:\.\w+)?$`)
	extensionPattern = regexp.MustCompile(`^\w+$`)
)

// ErrURLNotRecognized is the cause of every CodecError.
var ErrURLNotRecognized = errors.New("url does not match the storage url shape")

// CodecError reports a URL the codec could not decode. Callers recover by
// using the URL unmodified.
type CodecError struct {
	URL     string
	Missing string
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("%s: no %s in %q", ErrURLNotRecognized, e.Missing, e.URL)
}

func (e *CodecError) Unwrap() error {
	return ErrURLNotRecognized
}

// ExtractVersion returns the digits of the /upload/v<digits>/ segment.
// A version that does not fit in int64 is treated as absent.
func ExtractVersion(rawURL string) (int64, bool) {
	m := versionPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExtractPublicID returns the slash-delimited identifier after the last
// /<kind>/upload/ marker, skipping an optional version segment. Only the final
// .<ext> of the last path segment is stripped, so report.v2.final.pdf yields
// report.v2.final. Query strings and fragments are ignored.
func ExtractPublicID(rawURL string) (string, bool) {
	rawURL, _, _ = strings.Cut(rawURL, "#")
	rawURL, _, _ = strings.Cut(rawURL, "?")

	m := publicIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	id := m[1]
	if id == "" || strings.HasSuffix(id, "/") {
		return "", false
	}
	return id, true
}

// Identify derives the StorageIdentifier of an asset URL.
func Identify(rawURL string) (asset.StorageIdentifier, error) {
	publicID, ok := ExtractPublicID(rawURL)
	if !ok {
		return asset.StorageIdentifier{}, &CodecError{URL: rawURL, Missing: "public id"}
	}
	version, _ := ExtractVersion(rawURL)
	return asset.StorageIdentifier{PublicID: publicID, Version: version}, nil
}

// URLCodec builds provider URLs for one storage host and cloud name.
type URLCodec struct {
	storageHost string
	cloudName   string
}

func NewURLCodec(storageHost, cloudName string) (URLCodec, error) {
	storageHost = strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(storageHost), "https://"), "/")
	cloudName = strings.Trim(strings.TrimSpace(cloudName), "/")
	var hostErr, cloudErr error
	if storageHost == "" {
		hostErr = errs.NewValueIsRequiredError("storage host")
	}
	if cloudName == "" {
		cloudErr = errs.NewValueIsRequiredError("cloud name")
	}
	if err := errors.Join(hostErr, cloudErr); err != nil {
		return URLCodec{}, err
	}
	return URLCodec{storageHost: storageHost, cloudName: cloudName}, nil
}

func (c URLCodec) StorageHost() string {
	return c.storageHost
}

func (c URLCodec) CloudName() string {
	return c.cloudName
}

// AssetURL is the delivery URL of a stored object:
// https://<host>/<cloud>/<kind>/upload/v<version>/<publicID>[.<ext>].
// An extension ExtractPublicID would not strip is left off.
func (c URLCodec) AssetURL(kind asset.ResourceKind, version int64, publicID, ext string) string {
	u := fmt.Sprintf("https://%s/%s/%s/upload/v%d/%s", c.storageHost, c.cloudName, kind, version, publicID)
	if ext = strings.TrimPrefix(ext, "."); extensionPattern.MatchString(ext) {
		u += "." + ext
	}
	return u
}

// BuildDownloadURL returns a raw-class URL carrying an attachment directive
// so browsers save the file under originalName. Every dot of the encoded
// name is escaped as %2E; the provider would otherwise read the trailing
// dot-segment as a format hint.
func (c URLCodec) BuildDownloadURL(publicID string, version int64, originalName string) string {
	if originalName == "" {
		originalName = path.Base(publicID)
	}
	safeName := strings.ReplaceAll(encodeURIComponent(originalName), ".", "%2E")
	return fmt.Sprintf("https://%s/%s/raw/upload/fl_attachment:%s/v%d/%s",
		c.storageHost, c.cloudName, safeName, version, publicID)
}

// DownloadURLFor extracts the identifier of rawURL and builds its download
// URL. When the URL cannot be decoded, or carries no version, it is returned
// unmodified together with a *CodecError.
func (c URLCodec) DownloadURLFor(rawURL, originalName string) (string, error) {
	publicID, ok := ExtractPublicID(rawURL)
	if !ok {
		return rawURL, &CodecError{URL: rawURL, Missing: "public id"}
	}
	version, ok := ExtractVersion(rawURL)
	if !ok {
		return rawURL, &CodecError{URL: rawURL, Missing: "version"}
	}
	return c.BuildDownloadURL(publicID, version, originalName), nil
}

// encodeURIComponent percent-encodes s the way browsers' encodeURIComponent
// does: unreserved marks stay literal and every other UTF-8 byte becomes %XX.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if isURIComponentSafe(ch) {
			b.WriteByte(ch)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[ch>>4])
		b.WriteByte(hex[ch&0x0F])
	}
	return b.String()
}

func isURIComponentSafe(ch byte) bool {
	switch {
	case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", ch) >= 0
}
