// Package ports defines the persistence contracts between the domain layer
// and infrastructure. Repositories work with aggregates only; read models
// for the query side bypass them and go straight to the database.
package ports

import (
	"context"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate
	// unconditionally. Used where no status race is possible.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateWithStatusGuard persists changes to an order only if its
	// stored status still equals expected. When another writer got there
	// first the update matches zero rows and a ConcurrentWriteError is
	// returned; the caller's transaction should then roll back.
	UpdateWithStatusGuard(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByDriver retrieves the driver's orders in a non-terminal
	// status. Used by the driver-removal policy to unassign them.
	GetActiveByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error)

	// ExistsForTank reports whether any order references the tank.
	// A referenced tank cannot be deleted.
	ExistsForTank(ctx context.Context, tankID kernel.UUID) (bool, error)

	// Delete removes the order.
	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteAllByCustomer removes every order owned by the customer.
	// Part of the customer deletion cascade.
	DeleteAllByCustomer(ctx context.Context, customerID kernel.UUID) error
}
