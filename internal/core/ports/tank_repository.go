package ports

import (
	"context"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/tank"
)

// TankRepository defines the persistence contract for tank aggregates,
// region links included.
type TankRepository interface {
	// Add persists a new tank and its region links.
	Add(ctx context.Context, aggregate *tank.Tank) error

	// Update persists changes to an existing tank, replacing its region
	// links with the aggregate's current set.
	Update(ctx context.Context, aggregate *tank.Tank) error

	// Get retrieves a tank by its unique identifier, region links included.
	Get(ctx context.Context, id kernel.UUID) (*tank.Tank, error)

	// Delete removes the tank and its region links.
	Delete(ctx context.Context, id kernel.UUID) error
}
