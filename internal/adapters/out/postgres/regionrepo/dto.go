// Package regionrepo persists region aggregates.
package regionrepo

import (
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/region"

	"github.com/google/uuid"
)

// RegionDTO represents the database structure for persisting regions.
type RegionDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(100);uniqueIndex"`
}

// TableName overrides GORM's default naming convention.
func (RegionDTO) TableName() string {
	return "regions"
}

func fromDomain(r *region.Region) RegionDTO {
	return RegionDTO{
		ID:   r.ID().Bytes(),
		Name: r.Name(),
	}
}

func toDomain(dto RegionDTO) (*region.Region, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return region.RestoreRegion(id, dto.Name)
}
