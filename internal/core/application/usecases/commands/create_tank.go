package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/tank"
	"suqia/internal/pkg/guard"
)

var ErrCreateTankCommandIsNotConstructed = errors.New(
	"CreateTankCommand must be created via NewCreateTankCommand constructor",
)

// CreateTankCommand represents an admin adding a tank with its region links.
type CreateTankCommand struct { //nolint:recvcheck //using for validation
	tankID         kernel.UUID
	name           string
	capacity       int
	waterType      string
	pricePerBarrel kernel.Money
	location       string
	regionIDs      []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateTankCommand creates a command to add a tank. Field validation
// happens in the Tank constructor at handling time; the command only
// requires a valid tank id.
func NewCreateTankCommand(
	tankID kernel.UUID,
	name string,
	capacity int,
	waterType string,
	pricePerBarrel kernel.Money,
	location string,
	regionIDs []kernel.UUID,
) (CreateTankCommand, error) {
	cmd := CreateTankCommand{
		name:           name,
		capacity:       capacity,
		waterType:      waterType,
		pricePerBarrel: pricePerBarrel,
		location:       location,
		regionIDs:      regionIDs,
		guard:          guard.NewConstructorGuard(),
	}

	if err := cmd.setTankID(tankID); err != nil {
		return CreateTankCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTankCommand) Validate() error {
	return c.guard.Validate(ErrCreateTankCommandIsNotConstructed)
}

// TankID returns the id the new tank will be created under.
func (c CreateTankCommand) TankID() kernel.UUID {
	return c.tankID
}

// Name returns the tank name.
func (c CreateTankCommand) Name() string {
	return c.name
}

// Capacity returns the tank capacity in barrels.
func (c CreateTankCommand) Capacity() int {
	return c.capacity
}

// WaterType returns the kind of water the tank holds.
func (c CreateTankCommand) WaterType() string {
	return c.waterType
}

// PricePerBarrel returns the price of one barrel.
func (c CreateTankCommand) PricePerBarrel() kernel.Money {
	return c.pricePerBarrel
}

// Location returns the tank's free-form location description.
func (c CreateTankCommand) Location() string {
	return c.location
}

// RegionIDs returns the regions the tank will serve.
func (c CreateTankCommand) RegionIDs() []kernel.UUID {
	return c.regionIDs
}

func (c *CreateTankCommand) setTankID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tankID = id
	return nil
}

// CreateTankCommandHandler adds new tanks. Every linked region must exist.
type CreateTankCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateTankCommandHandler creates a handler for tank creation.
func NewCreateTankCommandHandler(uowFactory CatalogUoWFactory) CreateTankCommandHandler {
	return CreateTankCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the tank.
func (h CreateTankCommandHandler) Handle(ctx context.Context, cmd CreateTankCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newTank, err := tank.NewTank(
		cmd.TankID(),
		cmd.Name(),
		cmd.Capacity(),
		cmd.WaterType(),
		cmd.PricePerBarrel(),
		cmd.Location(),
		cmd.RegionIDs(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	for _, regionID := range newTank.RegionIDs() {
		if _, err = uow.RegionRepository().Get(ctx, regionID); err != nil {
			return err
		}
	}

	if err = uow.TankRepository().Add(ctx, newTank); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
