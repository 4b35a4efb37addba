package ports

import (
	"context"

	"suqia/internal/core/domain/model/driver"
	"suqia/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update saves an existing driver, currently only its region.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUserID retrieves the driver backed by the given user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*driver.Driver, error)

	// ExistsInRegion reports whether any driver serves the region.
	// A populated region cannot be deleted.
	ExistsInRegion(ctx context.Context, regionID kernel.UUID) (bool, error)

	// Delete removes the driver.
	Delete(ctx context.Context, id kernel.UUID) error
}
