// Package applicationrepo persists applications. The CV reference is
// embedded in the applications row so that shared CVs can be counted by URL.
package applicationrepo

import (
	"time"

	"recruitment/internal/adapters/out/postgres/assetrecord"
	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ApplicationDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Name          string              `gorm:"type:varchar(255);not null"`
	Email         string              `gorm:"type:varchar(255);not null"`
	ServiceID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	InterviewDate time.Time           `gorm:"type:date;not null"`
	InterviewTime string              `gorm:"type:varchar(32);not null"`
	CV            assetrecord.Columns `gorm:"embedded;embeddedPrefix:cv_"`
	Status        string              `gorm:"type:varchar(16);not null;index"`
	AppliedAt     time.Time           `gorm:"not null"`
}

func (ApplicationDTO) TableName() string {
	return "applications"
}

func fromDomain(a *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:            a.ID().Bytes(),
		Name:          a.Name(),
		Email:         a.Email(),
		ServiceID:     a.ServiceID().Bytes(),
		InterviewDate: a.InterviewDate().Date(),
		InterviewTime: a.InterviewDate().Time(),
		CV:            assetrecord.FromDomain(a.CV()),
		Status:        a.Status().String(),
		AppliedAt:     a.AppliedAt(),
	}
}

func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromBytes(dto.ServiceID[:])
	if err != nil {
		return nil, err
	}
	interviewDate, err := kernel.NewInterviewDate(dto.InterviewDate, dto.InterviewTime)
	if err != nil {
		return nil, err
	}
	cv, err := assetrecord.ToDomain(dto.CV)
	if err != nil {
		return nil, err
	}
	status, err := application.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(id, dto.Name, dto.Email, serviceID, interviewDate, cv, status, dto.AppliedAt)
}
