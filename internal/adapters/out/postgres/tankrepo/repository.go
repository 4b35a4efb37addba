package tankrepo

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/tank"
	"suqia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTankRepository implements TankRepository using GORM.
type GormTankRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTankRepository creates a new GORM tank repository.
func NewGormTankRepository(db *gorm.DB, tracker aggregateTracker) *GormTankRepository {
	return &GormTankRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new tank and its region links.
func (r *GormTankRepository) Add(ctx context.Context, aggregate *tank.Tank) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing tank, replacing its region links with the
// aggregate's current set.
func (r *GormTankRepository) Update(ctx context.Context, aggregate *tank.Tank) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, links := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TankDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":             dto.Name,
			"capacity":         dto.Capacity,
			"water_type":       dto.WaterType,
			"price_per_barrel": dto.PricePerBarrel,
			"location":         dto.Location,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("tankID", aggregate.ID())
	}

	if err := r.db.WithContext(ctx).
		Delete(&TankRegionDTO{}, "tank_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&links).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a tank by ID, region links included.
func (r *GormTankRepository) Get(ctx context.Context, id kernel.UUID) (*tank.Tank, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TankDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tankID", id.String())
		}
		return nil, err
	}

	var links []TankRegionDTO
	if err := r.db.WithContext(ctx).
		Find(&links, "tank_id = ?", id.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, links)
}

// Delete removes the tank and its region links.
func (r *GormTankRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Delete(&TankRegionDTO{}, "tank_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&TankDTO{}, "id = ?", id.Bytes()).Error
}
