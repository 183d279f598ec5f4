// Package userrepo persists user profiles and their optional CV.
package userrepo

import (
	"time"

	"recruitment/internal/adapters/out/postgres/assetrecord"
	"recruitment/internal/core/domain/model/kernel"
	"recruitment/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID        uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Username  string                      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Email     string                      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role      string                      `gorm:"type:varchar(16);not null"`
	CV        assetrecord.OptionalColumns `gorm:"embedded;embeddedPrefix:cv_"`
	CreatedAt time.Time                   `gorm:"not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		Username:  u.Username(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CV:        assetrecord.OptionalFromDomain(u.CV()),
		CreatedAt: u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	cv, err := assetrecord.OptionalToDomain(dto.CV)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Username, dto.Email, role, cv, dto.CreatedAt)
}
