package queries

import (
	"context"
	"log/slog"
	"time"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListUsersQueryHandler struct {
	db     *gorm.DB
	codec  services.URLCodec
	logger *slog.Logger
}

func NewListUsersQueryHandler(db *gorm.DB, codec services.URLCodec, logger *slog.Logger) ListUsersQueryHandler {
	return ListUsersQueryHandler{db: db, codec: codec, logger: logger.With("component", "list_users_query")}
}

// optionalAssetRow is a nullable asset column group.
type optionalAssetRow struct {
	ID           *uuid.UUID
	URL          *string
	ResourceKind *string
	OriginalName *string
	UploadedAt   *time.Time
}

func (r optionalAssetRow) row() (assetRow, bool) {
	if r.ID == nil || r.URL == nil {
		return assetRow{}, false
	}
	row := assetRow{ID: *r.ID, URL: *r.URL}
	if r.ResourceKind != nil {
		row.ResourceKind = *r.ResourceKind
	}
	if r.OriginalName != nil {
		row.OriginalName = *r.OriginalName
	}
	if r.UploadedAt != nil {
		row.UploadedAt = *r.UploadedAt
	}
	return row, true
}

type userRow struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      string
	CreatedAt time.Time
	CV        optionalAssetRow `gorm:"embedded;embeddedPrefix:cv_"`
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []userRow
	if err := h.db.WithContext(ctx).Table("users").Select(
		"id", "username", "email", "role", "created_at",
		"cv_id", "cv_url", "cv_resource_kind", "cv_original_name", "cv_uploaded_at",
	).Order("created_at DESC").Order("id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]ListUsersQueryResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}

		var cv *DocumentView
		if stored, ok := row.CV.row(); ok {
			view, err := stored.view()
			if err != nil {
				return nil, err
			}
			cv = &DocumentView{
				AssetView:   view,
				DownloadURL: downloadURL(h.codec, h.logger, view.URL, view.OriginalName),
			}
		}

		result = append(result, ListUsersQueryResponse{
			ID:        id,
			Username:  row.Username,
			Email:     row.Email,
			Role:      row.Role,
			CV:        cv,
			CreatedAt: row.CreatedAt,
		})
	}

	return result, nil
}
