// Package region provides the Region aggregate, the geographic unit that
// links customers, drivers, and tanks together.
package region

import (
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"
)

// MaxNameLength bounds the region name.
const MaxNameLength = 100

var (
	// ErrNameIsRequired is returned when creating a region without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRegionIsNotConstructed is returned when using an improperly initialized Region.
	ErrRegionIsNotConstructed = errors.New("Region must be created via NewRegion or RestoreRegion")
)

// Region is a named service area. Customers and drivers each belong to
// exactly one region; tanks may serve several.
type Region struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewRegion creates a region with the given name.
func NewRegion(id kernel.UUID, name string) (*Region, error) {
	r := &Region{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRegion reconstructs a region from persistence.
func RestoreRegion(id kernel.UUID, name string) (*Region, error) {
	return NewRegion(id, name)
}

// Validate ensures the Region was created through a constructor.
func (r *Region) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRegionIsNotConstructed
	}
	return nil
}

// IsEqual compares two regions by id.
func (r *Region) IsEqual(other *Region) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the region's unique identifier.
func (r *Region) ID() kernel.UUID {
	return r.id
}

// Name returns the region's name.
func (r *Region) Name() string {
	return r.name
}

// Rename changes the region's name.
func (r *Region) Rename(name string) error {
	return r.setName(name)
}

func (r *Region) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Region) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name", len(name), 1, MaxNameLength)
	}
	r.name = name
	return nil
}
