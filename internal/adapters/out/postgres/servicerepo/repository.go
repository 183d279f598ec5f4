package servicerepo

import (
	"context"
	"errors"

	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/service"
	"recruitment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormServiceRepository implements ports.ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Add saves a new service with its child rows.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update rewrites the service row and replaces all of its child rows.
// Callers run it inside a unit of work so the replacement is atomic.
func (r *GormServiceRepository) Update(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ServiceDTO{ID: dto.ID}).
		Select("*").
		Omit(clause.Associations, "id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serviceId", aggregate.ID().String())
	}

	if err := r.replaceChildren(db, dto); err != nil {
		return err
	}
	return nil
}

func (r *GormServiceRepository) replaceChildren(db *gorm.DB, dto ServiceDTO) error {
	for _, model := range []any{&ServiceAssetDTO{}, &InterviewDateDTO{}, &ParticipantDTO{}} {
		if err := db.Where("service_id = ?", dto.ID).Delete(model).Error; err != nil {
			return err
		}
	}
	if len(dto.Assets) > 0 {
		if err := db.Create(&dto.Assets).Error; err != nil {
			return err
		}
	}
	if len(dto.InterviewDates) > 0 {
		if err := db.Create(&dto.InterviewDates).Error; err != nil {
			return err
		}
	}
	if len(dto.Participants) > 0 {
		if err := db.Create(&dto.Participants).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a service with its children in their stored order.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	err := r.db.WithContext(ctx).
		Preload("Assets", orderByPosition("category")).
		Preload("InterviewDates", orderByPosition()).
		Preload("Participants", orderByPosition()).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the service; child rows go with it.
func (r *GormServiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serviceId", id.String())
	}
	return nil
}

func orderByPosition(leading ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, column := range leading {
			db = db.Order(column)
		}
		return db.Order("position")
	}
}
