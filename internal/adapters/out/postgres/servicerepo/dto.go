// Package servicerepo persists service aggregates: the service row with its
// embedded cover image, one asset row per media or document entry, and the
// interview dates and participants as ordered child rows.
package servicerepo

import (
	"time"

	"recruitment/internal/adapters/out/postgres/assetrecord"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"

	"github.com/google/uuid"
)

// ServiceDTO is the services table.
type ServiceDTO struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name           string              `gorm:"type:varchar(255);not null"`
	Description    string              `gorm:"type:text;not null"`
	CoverImage     assetrecord.Columns `gorm:"embedded;embeddedPrefix:cover_"`
	Assets         []ServiceAssetDTO   `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	InterviewDates []InterviewDateDTO  `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	Participants   []ParticipantDTO    `gorm:"foreignKey:ServiceID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time           `gorm:"not null"`
	UpdatedAt      time.Time           `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

// ServiceAssetDTO is one media or document entry. Category holds the field
// name the asset belongs to.
type ServiceAssetDTO struct {
	ServiceID uuid.UUID           `gorm:"type:uuid;not null;index"`
	Category  string              `gorm:"type:varchar(32);not null"`
	Position  int                 `gorm:"type:int;not null"`
	Asset     assetrecord.Columns `gorm:"embedded"`
}

func (ServiceAssetDTO) TableName() string {
	return "service_assets"
}

type InterviewDateDTO struct {
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;primaryKey"`
	Date      time.Time `gorm:"type:date;not null"`
	At        string    `gorm:"type:varchar(32);not null"`
}

func (InterviewDateDTO) TableName() string {
	return "service_interview_dates"
}

type ParticipantDTO struct {
	ServiceID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
}

func (ParticipantDTO) TableName() string {
	return "service_participants"
}

func fromDomain(s *service.Service) ServiceDTO {
	serviceID := s.ID().Bytes()

	media := s.Media()
	documents := s.Documents()
	assets := make([]ServiceAssetDTO, 0, len(media)+len(documents))
	for i, m := range media {
		assets = append(assets, ServiceAssetDTO{
			ServiceID: serviceID,
			Category:  string(asset.FieldMedia),
			Position:  i,
			Asset:     assetrecord.FromDomain(m),
		})
	}
	for i, d := range documents {
		assets = append(assets, ServiceAssetDTO{
			ServiceID: serviceID,
			Category:  string(asset.FieldDocuments),
			Position:  i,
			Asset:     assetrecord.FromDomain(d),
		})
	}

	dates := make([]InterviewDateDTO, 0, len(s.InterviewDates()))
	for i, d := range s.InterviewDates() {
		dates = append(dates, InterviewDateDTO{
			ServiceID: serviceID,
			Position:  i,
			Date:      d.Date(),
			At:        d.Time(),
		})
	}

	participants := make([]ParticipantDTO, 0, len(s.UsersInvolved()))
	for i, p := range s.UsersInvolved() {
		participants = append(participants, ParticipantDTO{
			ServiceID: serviceID,
			Position:  i,
			Name:      p.Name(),
			Email:     p.Email(),
		})
	}

	return ServiceDTO{
		ID:             serviceID,
		Name:           s.Name(),
		Description:    s.Description(),
		CoverImage:     assetrecord.FromDomain(s.CoverImage()),
		Assets:         assets,
		InterviewDates: dates,
		Participants:   participants,
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
}

// toDomain expects the child rows to be ordered by position.
func toDomain(dto ServiceDTO) (*service.Service, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	coverImage, err := assetrecord.ToDomain(dto.CoverImage)
	if err != nil {
		return nil, err
	}

	var media, documents []*asset.Asset
	for _, row := range dto.Assets {
		a, assetErr := assetrecord.ToDomain(row.Asset)
		if assetErr != nil {
			return nil, assetErr
		}
		if row.Category == string(asset.FieldMedia) {
			media = append(media, a)
		} else {
			documents = append(documents, a)
		}
	}

	dates := make([]kernel.InterviewDate, 0, len(dto.InterviewDates))
	for _, row := range dto.InterviewDates {
		d, dateErr := kernel.NewInterviewDate(row.Date, row.At)
		if dateErr != nil {
			return nil, dateErr
		}
		dates = append(dates, d)
	}

	participants := make([]service.Participant, 0, len(dto.Participants))
	for _, row := range dto.Participants {
		p, participantErr := service.NewParticipant(row.Name, row.Email)
		if participantErr != nil {
			return nil, participantErr
		}
		participants = append(participants, p)
	}

	return service.RestoreService(
		id,
		dto.Name,
		dto.Description,
		coverImage,
		media,
		documents,
		dates,
		participants,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
