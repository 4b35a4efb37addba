package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var ErrUpdateTankCommandIsNotConstructed = errors.New(
	"UpdateTankCommand must be created via NewUpdateTankCommand constructor",
)

// UpdateTankCommand represents an admin editing a tank's attributes and
// region links. Existing orders keep their snapshotted price.
type UpdateTankCommand struct { //nolint:recvcheck //using for validation
	tankID         kernel.UUID
	name           string
	capacity       int
	waterType      string
	pricePerBarrel kernel.Money
	location       string
	regionIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateTankCommand creates a command to edit a tank.
func NewUpdateTankCommand(
	tankID kernel.UUID,
	name string,
	capacity int,
	waterType string,
	pricePerBarrel kernel.Money,
	location string,
	regionIDs []kernel.UUID,
) (UpdateTankCommand, error) {
	cmd := UpdateTankCommand{
		name:           name,
		capacity:       capacity,
		waterType:      waterType,
		pricePerBarrel: pricePerBarrel,
		location:       location,
		regionIDs:      regionIDs,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setTankID(tankID); err != nil {
		return UpdateTankCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTankCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTankCommandIsNotConstructed)
}

// TankID returns the tank to edit.
func (c UpdateTankCommand) TankID() kernel.UUID {
	return c.tankID
}

// Name returns the new tank name.
func (c UpdateTankCommand) Name() string {
	return c.name
}

// Capacity returns the new capacity in barrels.
func (c UpdateTankCommand) Capacity() int {
	return c.capacity
}

// WaterType returns the new water type.
func (c UpdateTankCommand) WaterType() string {
	return c.waterType
}

// PricePerBarrel returns the new price of one barrel.
func (c UpdateTankCommand) PricePerBarrel() kernel.Money {
	return c.pricePerBarrel
}

// Location returns the new location description.
func (c UpdateTankCommand) Location() string {
	return c.location
}

// RegionIDs returns the new set of served regions.
func (c UpdateTankCommand) RegionIDs() []kernel.UUID {
	return c.regionIDs
}

func (c *UpdateTankCommand) setTankID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tankID = id
	return nil
}

// UpdateTankCommandHandler edits tanks.
type UpdateTankCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateTankCommandHandler creates a handler for tank editing.
func NewUpdateTankCommandHandler(uowFactory CatalogUoWFactory) UpdateTankCommandHandler {
	return UpdateTankCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the edit.
func (h UpdateTankCommandHandler) Handle(ctx context.Context, cmd UpdateTankCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	t, err := uow.TankRepository().Get(ctx, cmd.TankID())
	if err != nil {
		return err
	}

	if err = t.Update(
		cmd.Name(),
		cmd.Capacity(),
		cmd.WaterType(),
		cmd.PricePerBarrel(),
		cmd.Location(),
		cmd.RegionIDs(),
	); err != nil {
		return err
	}

	for _, regionID := range t.RegionIDs() {
		if _, err = uow.RegionRepository().Get(ctx, regionID); err != nil {
			return err
		}
	}

	if err = uow.TankRepository().Update(ctx, t); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
