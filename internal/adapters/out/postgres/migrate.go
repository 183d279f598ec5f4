package postgres

import (
	"context"

	"recruitment/internal/adapters/out/postgres/applicationrepo"
	"recruitment/internal/adapters/out/postgres/servicerepo"
	"recruitment/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every table of the schema in creation order.
func Models() []any {
	return []any{
		&servicerepo.ServiceDTO{},
		&servicerepo.ServiceAssetDTO{},
		&servicerepo.InterviewDateDTO{},
		&servicerepo.ParticipantDTO{},
		&applicationrepo.ApplicationDTO{},
		&userrepo.UserDTO{},
	}
}

// Migrate creates or alters the schema to match the models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(Models()...)
}
