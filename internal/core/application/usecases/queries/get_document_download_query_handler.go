package queries

import (
	"context"
	"log/slog"

	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/services"
	"recruitment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetDocumentDownloadQueryHandler struct {
	db     *gorm.DB
	codec  services.URLCodec
	logger *slog.Logger
}

func NewGetDocumentDownloadQueryHandler(
	db *gorm.DB,
	codec services.URLCodec,
	logger *slog.Logger,
) GetDocumentDownloadQueryHandler {
	return GetDocumentDownloadQueryHandler{db: db, codec: codec, logger: logger.With("component", "document_download_query")}
}

// Handle returns the URL to redirect the client to. It is the stored URL
// itself when the codec cannot decode it.
func (h GetDocumentDownloadQueryHandler) Handle(ctx context.Context, query GetDocumentDownloadQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	var rows []assetRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, url, resource_kind, original_name, uploaded_at
		FROM service_assets
		WHERE service_id = ? AND id = ? AND category = ?
	`, query.ServiceID().Bytes(), query.DocumentID().Bytes(), string(asset.FieldDocuments)).Scan(&rows).Error; err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", errs.NewObjectNotFoundError("documentId", query.DocumentID().String())
	}

	return downloadURL(h.codec, h.logger, rows[0].URL, rows[0].OriginalName), nil
}
