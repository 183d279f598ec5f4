package asset

import (
	"fmt"

	"recruitment/internal/pkg/errs"

	"github.com/dustin/go-humanize"
)

const (
	DefaultMaxFileSizeBytes   int64 = 50 * 1000 * 1000
	DefaultMaxFilesPerRequest       = 16
)

// UploadLimits bounds one multipart request before anything is written to storage.
type UploadLimits struct {
	MaxFileSizeBytes   int64
	MaxFilesPerRequest int
}

func DefaultUploadLimits() UploadLimits {
	return UploadLimits{
		MaxFileSizeBytes:   DefaultMaxFileSizeBytes,
		MaxFilesPerRequest: DefaultMaxFilesPerRequest,
	}
}

func NewUploadLimits(maxFileSizeBytes int64, maxFilesPerRequest int) (UploadLimits, error) {
	if maxFileSizeBytes <= 0 {
		return UploadLimits{}, errs.NewValueIsOutOfRangeError("max file size", maxFileSizeBytes, 1, "unbounded")
	}
	if maxFilesPerRequest <= 0 {
		return UploadLimits{}, errs.NewValueIsOutOfRangeError("max files per request", maxFilesPerRequest, 1, "unbounded")
	}
	return UploadLimits{MaxFileSizeBytes: maxFileSizeBytes, MaxFilesPerRequest: maxFilesPerRequest}, nil
}

// CheckSize rejects a file larger than MaxFileSizeBytes.
func (l UploadLimits) CheckSize(field Field, filename string, size int64) error {
	if size > l.MaxFileSizeBytes {
		return &ValidationError{
			Field:  string(field),
			Reason: fmt.Sprintf("file %q is %s, limit is %s", filename, humanize.Bytes(uint64(size)), humanize.Bytes(uint64(l.MaxFileSizeBytes))),
		}
	}
	return nil
}

// CheckCounts rejects a request whose total file count exceeds MaxFilesPerRequest
// or whose per-field count exceeds the field policy's MaxCount.
func (l UploadLimits) CheckCounts(counts map[Field]int) error {
	total := 0
	for _, field := range KnownFields() {
		n := counts[field]
		total += n
		policy, _ := LookupPolicy(string(field))
		if n > policy.MaxCount() {
			return &ValidationError{
				Field:  string(field),
				Reason: fmt.Sprintf("%d files sent, at most %d allowed", n, policy.MaxCount()),
			}
		}
	}
	for field, n := range counts {
		if _, ok := LookupPolicy(string(field)); !ok {
			total += n
		}
	}
	if total > l.MaxFilesPerRequest {
		return &ValidationError{
			Reason: fmt.Sprintf("%d files sent, at most %d allowed per request", total, l.MaxFilesPerRequest),
		}
	}
	return nil
}
