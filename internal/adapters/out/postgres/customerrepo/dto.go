// Package customerrepo persists customer aggregates.
package customerrepo

import (
	"suqia/internal/core/domain/model/customer"
	"suqia/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RegionID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming convention.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:       c.ID().Bytes(),
		UserID:   c.UserID().Bytes(),
		RegionID: c.RegionID().Bytes(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
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

	return customer.RestoreCustomer(id, userID, regionID)
}
