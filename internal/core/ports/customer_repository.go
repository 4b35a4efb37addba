package ports

import (
	"context"

	"suqia/internal/core/domain/model/customer"
	"suqia/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update saves an existing customer, currently only its region.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByUserID retrieves the customer backed by the given user account.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*customer.Customer, error)

	// ExistsInRegion reports whether any customer lives in the region.
	// A populated region cannot be deleted.
	ExistsInRegion(ctx context.Context, regionID kernel.UUID) (bool, error)

	// Delete removes the customer.
	Delete(ctx context.Context, id kernel.UUID) error
}
