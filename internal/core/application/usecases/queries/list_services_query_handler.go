package queries

import (
	"context"
	"time"

	"recruitment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListServicesQueryHandler struct {
	db *gorm.DB
}

func NewListServicesQueryHandler(db *gorm.DB) ListServicesQueryHandler {
	return ListServicesQueryHandler{db: db}
}

func (h ListServicesQueryHandler) Handle(ctx context.Context, query ListServicesQuery) ([]ListServicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]ListServicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.description,
			s.cover_url,
			COUNT(a.id) FILTER (WHERE a.category = 'media') AS media_count,
			COUNT(a.id) FILTER (WHERE a.category = 'documents') AS document_count,
			s.created_at
		FROM services s
		LEFT JOIN service_assets a ON a.service_id = s.id
		GROUP BY s.id
		ORDER BY s.created_at DESC, s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListServicesQueryResponse
		var id uuid.UUID
		var createdAt time.Time

		if err = rows.Scan(
			&id,
			&item.Name,
			&item.Description,
			&item.CoverImageURL,
			&item.MediaCount,
			&item.DocumentCount,
			&createdAt,
		); err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = serviceID
		item.CreatedAt = createdAt.UTC()
		result = append(result, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
