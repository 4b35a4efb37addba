// Package tankrepo persists tank aggregates together with their region
// links, which live in a separate join table.
package tankrepo

import (
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/tank"

	"github.com/google/uuid"
)

// TankDTO represents the database structure for persisting tanks.
type TankDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(100)"`
	Capacity       int
	WaterType      string  `gorm:"type:varchar(50)"`
	PricePerBarrel float64 `gorm:"type:numeric(18,2)"`
	Location       string  `gorm:"type:varchar(200)"`
}

// TableName overrides GORM's default naming convention.
func (TankDTO) TableName() string {
	return "tanks"
}

// TankRegionDTO links a tank to one region it serves.
type TankRegionDTO struct {
	TankID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RegionID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName overrides GORM's default naming convention.
func (TankRegionDTO) TableName() string {
	return "tank_regions"
}

func fromDomain(t *tank.Tank) (TankDTO, []TankRegionDTO) {
	dto := TankDTO{
		ID:             t.ID().Bytes(),
		Name:           t.Name(),
		Capacity:       t.Capacity(),
		WaterType:      t.WaterType(),
		PricePerBarrel: t.PricePerBarrel().Float64(),
		Location:       t.Location(),
	}

	regionIDs := t.RegionIDs()
	links := make([]TankRegionDTO, 0, len(regionIDs))
	for _, regionID := range regionIDs {
		links = append(links, TankRegionDTO{
			TankID:   dto.ID,
			RegionID: regionID.Bytes(),
		})
	}

	return dto, links
}

func toDomain(dto TankDTO, links []TankRegionDTO) (*tank.Tank, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.PricePerBarrel)
	if err != nil {
		return nil, err
	}

	regionIDs := make([]kernel.UUID, 0, len(links))
	for _, link := range links {
		regionID, linkErr := kernel.UUIDFromBytes(link.RegionID[:])
		if linkErr != nil {
			return nil, linkErr
		}
		regionIDs = append(regionIDs, regionID)
	}

	return tank.RestoreTank(id, dto.Name, dto.Capacity, dto.WaterType, price, dto.Location, regionIDs)
}
