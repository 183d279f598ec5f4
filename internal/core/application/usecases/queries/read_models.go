// Package queries contains the read side of the recruitment backend. Query
// handlers read straight from PostgreSQL through GORM and return flat read
// models; stored document and CV URLs are decorated with download URLs.
package queries

import (
	"errors"
	"log/slog"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/services"

	"github.com/google/uuid"
)

// AssetView is a stored asset as clients see it.
type AssetView struct {
	ID           kernel.UUID
	URL          string
	ResourceKind string
	OriginalName string
	UploadedAt   time.Time
}

// DocumentView adds a download URL that makes browsers save the file under
// its original name.
type DocumentView struct {
	AssetView
	DownloadURL string
}

type InterviewDateView struct {
	Date time.Time
	Time string
}

type ParticipantView struct {
	Name  string
	Email string
}

// assetRow is the column group shared by every asset-bearing table.
type assetRow struct {
	ID           uuid.UUID
	URL          string
	ResourceKind string
	OriginalName string
	UploadedAt   time.Time
}

func (r assetRow) view() (AssetView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return AssetView{}, err
	}
	kind := r.ResourceKind
	if kind == "" {
		kind = "unknown"
	}
	return AssetView{
		ID:           id,
		URL:          r.URL,
		ResourceKind: kind,
		OriginalName: r.OriginalName,
		UploadedAt:   r.UploadedAt,
	}, nil
}

// downloadURL decorates a stored URL. URLs the codec cannot decode are
// returned unchanged and logged.
func downloadURL(codec services.URLCodec, logger *slog.Logger, rawURL, originalName string) string {
	u, err := codec.DownloadURLFor(rawURL, originalName)
	if err != nil {
		var codecErr *services.CodecError
		if errors.As(err, &codecErr) {
			logger.Warn("Serving stored url without download directive", "url", rawURL, "missing", codecErr.Missing)
		}
	}
	return u
}
