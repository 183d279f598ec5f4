package applicationrepo

import (
	"context"
	"errors"

	"recruitment/internal/core/domain/model/application"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements ports.ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db *gorm.DB
}

func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ApplicationDTO{ID: dto.ID}).Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("applicationId", aggregate.ID().String())
	}
	return nil
}

func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("applicationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormApplicationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ApplicationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("applicationId", id.String())
	}
	return nil
}

func (r *GormApplicationRepository) CountByCVURL(ctx context.Context, url string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ApplicationDTO{}).Where("cv_url = ?", url).Count(&count).Error
	return count, err
}
