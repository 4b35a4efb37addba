// Package userrepo persists user identity records.
package userrepo

import (
	"time"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user identities.
// The email column carries a unique index; the repository translates its
// violation into a validation error.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(254);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100)"`
	FullName     string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(30)"`
	Address      string    `gorm:"type:varchar(200)"`
	Role         string    `gorm:"type:varchar(20)"`
	RegionID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	LockedUntil  *time.Time
}

// TableName overrides GORM's default naming convention.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) UserDTO {
	var regionID *uuid.UUID
	if id := u.RegionID(); id != nil {
		raw := id.Bytes()
		regionID = &raw
	}

	return UserDTO{
		ID:           u.ID().Bytes(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName(),
		Phone:        u.Phone(),
		Address:      u.Address(),
		Role:         u.Role().String(),
		RegionID:     regionID,
		CreatedAt:    u.CreatedAt(),
		LockedUntil:  u.LockedUntil(),
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var regionID *kernel.UUID
	if dto.RegionID != nil {
		rID, regionErr := kernel.UUIDFromBytes((*dto.RegionID)[:])
		if regionErr != nil {
			return nil, regionErr
		}
		regionID = &rID
	}

	return account.RestoreUser(id, dto.Email, dto.PasswordHash, dto.FullName,
		dto.Phone, dto.Address, role, regionID, dto.CreatedAt, dto.LockedUntil)
}
