package queries

import (
	"errors"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/guard"
)

var ErrGetDocumentDownloadQueryIsNotConstructed = errors.New(
	"GetDocumentDownloadQuery must be created via NewGetDocumentDownloadQuery constructor",
)

// GetDocumentDownloadQuery resolves the download URL of one service document.
type GetDocumentDownloadQuery struct {
	serviceID  kernel.UUID
	documentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDocumentDownloadQuery(serviceID, documentID kernel.UUID) (GetDocumentDownloadQuery, error) {
	if err := errors.Join(serviceID.Validate(), documentID.Validate()); err != nil {
		return GetDocumentDownloadQuery{}, err
	}
	return GetDocumentDownloadQuery{
		serviceID:  serviceID,
		documentID: documentID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDocumentDownloadQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentDownloadQueryIsNotConstructed)
}

func (q GetDocumentDownloadQuery) ServiceID() kernel.UUID {
	return q.serviceID
}

func (q GetDocumentDownloadQuery) DocumentID() kernel.UUID {
	return q.documentID
}
