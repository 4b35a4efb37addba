package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/region"
	"suqia/internal/pkg/guard"
)

var ErrCreateRegionCommandIsNotConstructed = errors.New(
	"CreateRegionCommand must be created via NewCreateRegionCommand constructor",
)

// CreateRegionCommand represents an admin adding a new service region.
type CreateRegionCommand struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateRegionCommand creates a command to add a region.
func NewCreateRegionCommand(regionID kernel.UUID, name string) (CreateRegionCommand, error) {
	cmd := CreateRegionCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRegionID(regionID); err != nil {
		return CreateRegionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRegionCommand) Validate() error {
	return c.guard.Validate(ErrCreateRegionCommandIsNotConstructed)
}

// RegionID returns the id the new region will be created under.
func (c CreateRegionCommand) RegionID() kernel.UUID {
	return c.regionID
}

// Name returns the region name.
func (c CreateRegionCommand) Name() string {
	return c.name
}

func (c *CreateRegionCommand) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}

// CreateRegionCommandHandler adds new regions.
type CreateRegionCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateRegionCommandHandler creates a handler for region creation.
func NewCreateRegionCommandHandler(uowFactory CatalogUoWFactory) CreateRegionCommandHandler {
	return CreateRegionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the region.
func (h CreateRegionCommandHandler) Handle(ctx context.Context, cmd CreateRegionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newRegion, err := region.NewRegion(cmd.RegionID(), cmd.Name())
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

	if err = uow.RegionRepository().Add(ctx, newRegion); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
