package regionrepo

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/region"
	"suqia/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRegionRepository implements RegionRepository using GORM.
type GormRegionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRegionRepository creates a new GORM region repository.
func NewGormRegionRepository(db *gorm.DB, tracker aggregateTracker) *GormRegionRepository {
	return &GormRegionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new region to the database.
func (r *GormRegionRepository) Add(ctx context.Context, aggregate *region.Region) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing region to the database.
func (r *GormRegionRepository) Update(ctx context.Context, aggregate *region.Region) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RegionDTO{}).
		Where("id = ?", dto.ID).
		Update("name", dto.Name)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("regionID", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a region by ID.
func (r *GormRegionRepository) Get(ctx context.Context, id kernel.UUID) (*region.Region, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RegionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("regionID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the region and its tank links.
func (r *GormRegionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Exec("DELETE FROM tank_regions WHERE region_id = ?", id.Bytes()).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&RegionDTO{}, "id = ?", id.Bytes()).Error
}
