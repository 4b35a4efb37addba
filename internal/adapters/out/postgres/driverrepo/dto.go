// Package driverrepo persists driver aggregates.
package driverrepo

import (
	"suqia/internal/core/domain/model/driver"
	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting drivers.
type DriverDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RegionID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming convention.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:       d.ID().Bytes(),
		UserID:   d.UserID().Bytes(),
		RegionID: d.RegionID().Bytes(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	regionID, err := kernel.UUIDFromBytes(dto.RegionID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, userID, regionID)
}
