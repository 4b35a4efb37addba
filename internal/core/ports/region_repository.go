package ports

import (
	"context"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/region"
)

// RegionRepository defines the persistence contract for region aggregates.
type RegionRepository interface {
	// Add persists a new region.
	Add(ctx context.Context, aggregate *region.Region) error

	// Update persists changes to an existing region.
	Update(ctx context.Context, aggregate *region.Region) error

	// Get retrieves a region by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*region.Region, error)

	// Delete removes the region and its tank links. Callers must first
	// check no customer or driver still lives in the region.
	Delete(ctx context.Context, id kernel.UUID) error
}
