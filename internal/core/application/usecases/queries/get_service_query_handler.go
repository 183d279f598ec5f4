package queries

import (
	"context"
	"log/slog"
	"time"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetServiceQueryHandler struct {
	db     *gorm.DB
	codec  services.URLCodec
	logger *slog.Logger
}

func NewGetServiceQueryHandler(db *gorm.DB, codec services.URLCodec, logger *slog.Logger) GetServiceQueryHandler {
	return GetServiceQueryHandler{db: db, codec: codec, logger: logger.With("component", "get_service_query")}
}

type serviceRow struct {
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Cover       assetRow `gorm:"embedded;embeddedPrefix:cover_"`
}

type serviceAssetRow struct {
	Category string
	Asset    assetRow `gorm:"embedded"`
}

func (h GetServiceQueryHandler) Handle(ctx context.Context, query GetServiceQuery) (GetServiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetServiceQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.ServiceID().Bytes()

	var rows []serviceRow
	if err := db.Raw(`
		SELECT
			name,
			description,
			created_at,
			updated_at,
			cover_id,
			cover_url,
			cover_resource_kind,
			cover_original_name,
			cover_uploaded_at
		FROM services
		WHERE id = ?
	`, id).Scan(&rows).Error; err != nil {
		return GetServiceQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetServiceQueryResponse{}, errs.NewObjectNotFoundError("serviceId", query.ServiceID().String())
	}
	row := rows[0]

	cover, err := row.Cover.view()
	if err != nil {
		return GetServiceQueryResponse{}, err
	}
	response := GetServiceQueryResponse{
		ID:             query.ServiceID(),
		Name:           row.Name,
		Description:    row.Description,
		CoverImage:     cover,
		Media:          make([]AssetView, 0),
		Documents:      make([]DocumentView, 0),
		InterviewDates: make([]InterviewDateView, 0),
		UsersInvolved:  make([]ParticipantView, 0),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}

	var assets []serviceAssetRow
	if err = db.Raw(`
		SELECT category, id, url, resource_kind, original_name, uploaded_at
		FROM service_assets
		WHERE service_id = ?
		ORDER BY category, position
	`, id).Scan(&assets).Error; err != nil {
		return GetServiceQueryResponse{}, err
	}
	for _, a := range assets {
		view, viewErr := a.Asset.view()
		if viewErr != nil {
			return GetServiceQueryResponse{}, viewErr
		}
		if a.Category == string(asset.FieldMedia) {
			response.Media = append(response.Media, view)
			continue
		}
		response.Documents = append(response.Documents, DocumentView{
			AssetView:   view,
			DownloadURL: downloadURL(h.codec, h.logger, view.URL, view.OriginalName),
		})
	}

	if err = db.Raw(`
		SELECT date, at AS time
		FROM service_interview_dates
		WHERE service_id = ?
		ORDER BY position
	`, id).Scan(&response.InterviewDates).Error; err != nil {
		return GetServiceQueryResponse{}, err
	}

	if err = db.Raw(`
		SELECT name, email
		FROM service_participants
		WHERE service_id = ?
		ORDER BY position
	`, id).Scan(&response.UsersInvolved).Error; err != nil {
		return GetServiceQueryResponse{}, err
	}

	return response, nil
}
