// Package tank provides the Tank aggregate: a water source with a capacity,
// a water type, a price per barrel, and the set of regions it serves.
package tank

import (
	"errors"
	"fmt"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"
)

// Field length bounds.
const (
	MaxNameLength      = 100
	MaxWaterTypeLength = 50
	MaxLocationLength  = 200
)

var (
	// ErrNameIsRequired is returned when creating a tank without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWaterTypeIsRequired is returned when creating a tank without a water type.
	ErrWaterTypeIsRequired = errs.NewValueIsRequiredError("waterType")
	// ErrCapacityIsRequired is returned when the capacity is not positive.
	ErrCapacityIsRequired = errs.NewValueIsRequiredError("capacity")
	// ErrRegionsAreRequired is returned when a tank is linked to no region.
	ErrRegionsAreRequired = errs.NewValueIsRequiredError("regionIDs")
	// ErrTankIsNotConstructed is returned when using an improperly initialized Tank.
	ErrTankIsNotConstructed = errors.New("Tank must be created via NewTank or RestoreTank")
)

// Tank is a water source. The regions it serves are held as a set of region
// ids; customers may only order from tanks serving their own region. The
// price per barrel is the value snapshotted into orders at creation time,
// so editing it never changes existing orders.
type Tank struct {
	id             kernel.UUID
	name           string
	capacity       int
	waterType      string
	pricePerBarrel kernel.Money
	location       string
	regionIDs      []kernel.UUID

	isConstructed bool
}

// NewTank creates a tank serving at least one region.
func NewTank(
	id kernel.UUID,
	name string,
	capacity int,
	waterType string,
	pricePerBarrel kernel.Money,
	location string,
	regionIDs []kernel.UUID,
) (*Tank, error) {
	t := &Tank{isConstructed: true}

	if err := errors.Join(
		t.setID(id),
		t.setName(name),
		t.setCapacity(capacity),
		t.setWaterType(waterType),
		t.setPricePerBarrel(pricePerBarrel),
		t.setLocation(location),
		t.setRegionIDs(regionIDs),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTank reconstructs a tank from persistence.
func RestoreTank(
	id kernel.UUID,
	name string,
	capacity int,
	waterType string,
	pricePerBarrel kernel.Money,
	location string,
	regionIDs []kernel.UUID,
) (*Tank, error) {
	return NewTank(id, name, capacity, waterType, pricePerBarrel, location, regionIDs)
}

// Validate ensures the Tank was created through a constructor.
func (t *Tank) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTankIsNotConstructed
	}
	return nil
}

// IsEqual compares two tanks by id.
func (t *Tank) IsEqual(other *Tank) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the tank's unique identifier.
func (t *Tank) ID() kernel.UUID {
	return t.id
}

// Name returns the tank's name.
func (t *Tank) Name() string {
	return t.name
}

// Capacity returns the tank's capacity in barrels.
func (t *Tank) Capacity() int {
	return t.capacity
}

// WaterType returns the kind of water the tank holds.
func (t *Tank) WaterType() string {
	return t.waterType
}

// PricePerBarrel returns the current price of one barrel.
func (t *Tank) PricePerBarrel() kernel.Money {
	return t.pricePerBarrel
}

// Location returns the tank's free-form location description.
func (t *Tank) Location() string {
	return t.location
}

// RegionIDs returns a copy of the region ids the tank serves.
func (t *Tank) RegionIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(t.regionIDs))
	copy(out, t.regionIDs)
	return out
}

// ServesRegion reports whether the tank serves the given region.
func (t *Tank) ServesRegion(regionID kernel.UUID) bool {
	for _, id := range t.regionIDs {
		if id.IsEqual(regionID) {
			return true
		}
	}
	return false
}

// Update replaces the tank's descriptive attributes and region links. A
// failed update leaves the tank unchanged.
func (t *Tank) Update(
	name string,
	capacity int,
	waterType string,
	pricePerBarrel kernel.Money,
	location string,
	regionIDs []kernel.UUID,
) error {
	updated := *t
	if err := errors.Join(
		updated.setName(name),
		updated.setCapacity(capacity),
		updated.setWaterType(waterType),
		updated.setPricePerBarrel(pricePerBarrel),
		updated.setLocation(location),
		updated.setRegionIDs(regionIDs),
	); err != nil {
		return err
	}

	*t = updated
	return nil
}

func (t *Tank) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tank) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(name), 1, MaxNameLength)
	}
	t.name = name
	return nil
}

func (t *Tank) setCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrCapacityIsRequired
	}
	t.capacity = capacity
	return nil
}

func (t *Tank) setWaterType(waterType string) error {
	if waterType == "" {
		return ErrWaterTypeIsRequired
	}
	if len(waterType) > MaxWaterTypeLength {
		return errs.NewValueIsOutOfRangeError("waterType", len(waterType), 1, MaxWaterTypeLength)
	}
	t.waterType = waterType
	return nil
}

func (t *Tank) setPricePerBarrel(price kernel.Money) error {
	if price.IsZero() {
		return errs.NewValueIsRequiredError("pricePerBarrel")
	}
	t.pricePerBarrel = price
	return nil
}

func (t *Tank) setLocation(location string) error {
	if len(location) > MaxLocationLength {
		return errs.NewValueIsOutOfRangeError("location", len(location), 0, MaxLocationLength)
	}
	t.location = location
	return nil
}

// setRegionIDs validates and copies the region links, rejecting duplicates
// (the pair tank+region is unique in storage).
func (t *Tank) setRegionIDs(regionIDs []kernel.UUID) error {
	if len(regionIDs) == 0 {
		return ErrRegionsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(regionIDs))
	out := make([]kernel.UUID, 0, len(regionIDs))
	for _, id := range regionIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("regionIDs",
				fmt.Errorf("duplicate region %s", id))
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	t.regionIDs = out
	return nil
}
