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

type ListApplicationsQueryHandler struct {
	db     *gorm.DB
	codec  services.URLCodec
	logger *slog.Logger
}

func NewListApplicationsQueryHandler(db *gorm.DB, codec services.URLCodec, logger *slog.Logger) ListApplicationsQueryHandler {
	return ListApplicationsQueryHandler{db: db, codec: codec, logger: logger.With("component", "list_applications_query")}
}

type applicationRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ServiceID     uuid.UUID
	InterviewDate time.Time
	InterviewTime string
	Status        string
	AppliedAt     time.Time
	CV            assetRow `gorm:"embedded;embeddedPrefix:cv_"`
}

func (h ListApplicationsQueryHandler) Handle(
	ctx context.Context,
	query ListApplicationsQuery,
) ([]ListApplicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("applications").Select(
		"id", "name", "email", "service_id", "interview_date", "interview_time", "status", "applied_at",
		"cv_id", "cv_url", "cv_resource_kind", "cv_original_name", "cv_uploaded_at",
	)
	if query.ServiceID() != nil {
		db = db.Where("service_id = ?", query.ServiceID().Bytes())
	}

	var rows []applicationRow
	if err := db.Order("applied_at DESC").Order("id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]ListApplicationsQueryResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		serviceID, err := kernel.UUIDFromBytes(row.ServiceID[:])
		if err != nil {
			return nil, err
		}
		cv, err := row.CV.view()
		if err != nil {
			return nil, err
		}

		result = append(result, ListApplicationsQueryResponse{
			ID:            id,
			Name:          row.Name,
			Email:         row.Email,
			ServiceID:     serviceID,
			InterviewDate: InterviewDateView{Date: row.InterviewDate, Time: row.InterviewTime},
			CV: DocumentView{
				AssetView:   cv,
				DownloadURL: downloadURL(h.codec, h.logger, cv.URL, cv.OriginalName),
			},
			Status:    row.Status,
			AppliedAt: row.AppliedAt,
		})
	}

	return result, nil
}
