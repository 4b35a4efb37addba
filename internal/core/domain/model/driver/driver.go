// Package driver provides the Driver aggregate: the delivering side of a
// user account, pinned to the single region it serves.
package driver

import (
	"errors"

	"suqia/internal/core/domain/model/kernel"
)

// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver links a user account to the region whose pending orders it may
// accept. A driver only ever sees and serves orders from its own region.
type Driver struct {
	id       kernel.UUID
	userID   kernel.UUID
	regionID kernel.UUID

	isConstructed bool
}

// NewDriver creates a driver for the given user serving the given region.
func NewDriver(id kernel.UUID, userID kernel.UUID, regionID kernel.UUID) (*Driver, error) {
	d := &Driver{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(userID),
		d.setRegionID(regionID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(id kernel.UUID, userID kernel.UUID, regionID kernel.UUID) (*Driver, error) {
	return NewDriver(id, userID, regionID)
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by id.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the identity record behind the driver.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// RegionID returns the region the driver serves.
func (d *Driver) RegionID() kernel.UUID {
	return d.regionID
}

// ServesRegion reports whether the driver serves the given region.
func (d *Driver) ServesRegion(regionID kernel.UUID) bool {
	return d.regionID.IsEqual(regionID)
}

// MoveToRegion reassigns the driver to another region. Orders the driver
// already claimed stay claimed.
func (d *Driver) MoveToRegion(regionID kernel.UUID) error {
	return d.setRegionID(regionID)
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.userID = id
	return nil
}

func (d *Driver) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.regionID = id
	return nil
}
