// Package customer provides the Customer aggregate: the order-placing side
// of a user account, pinned to a single region.
package customer

import (
	"errors"

	"suqia/internal/core/domain/model/kernel"
)

// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer links a user account to the region it orders from. The region
// decides which tanks the customer may order against and which drivers see
// the customer's pending orders.
type Customer struct {
	id       kernel.UUID
	userID   kernel.UUID
	regionID kernel.UUID

	isConstructed bool
}

// NewCustomer creates a customer for the given user in the given region.
func NewCustomer(id kernel.UUID, userID kernel.UUID, regionID kernel.UUID) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setRegionID(regionID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(id kernel.UUID, userID kernel.UUID, regionID kernel.UUID) (*Customer, error) {
	return NewCustomer(id, userID, regionID)
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by id.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// UserID returns the identity record behind the customer.
func (c *Customer) UserID() kernel.UUID {
	return c.userID
}

// RegionID returns the region the customer orders from.
func (c *Customer) RegionID() kernel.UUID {
	return c.regionID
}

// MoveToRegion relocates the customer. Orders already placed keep their
// snapshot; only future availability changes.
func (c *Customer) MoveToRegion(regionID kernel.UUID) error {
	return c.setRegionID(regionID)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *Customer) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}
