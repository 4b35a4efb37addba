package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var ErrUpdateRegionCommandIsNotConstructed = errors.New(
	"UpdateRegionCommand must be created via NewUpdateRegionCommand constructor",
)

// UpdateRegionCommand represents an admin renaming a region.
type UpdateRegionCommand struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewUpdateRegionCommand creates a command to rename a region.
func NewUpdateRegionCommand(regionID kernel.UUID, name string) (UpdateRegionCommand, error) {
	cmd := UpdateRegionCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRegionID(regionID); err != nil {
		return UpdateRegionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRegionCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRegionCommandIsNotConstructed)
}

// RegionID returns the region to rename.
func (c UpdateRegionCommand) RegionID() kernel.UUID {
	return c.regionID
}

// Name returns the new region name.
func (c UpdateRegionCommand) Name() string {
	return c.name
}

func (c *UpdateRegionCommand) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}

// UpdateRegionCommandHandler renames regions.
type UpdateRegionCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateRegionCommandHandler creates a handler for region renaming.
func NewUpdateRegionCommandHandler(uowFactory CatalogUoWFactory) UpdateRegionCommandHandler {
	return UpdateRegionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle renames the region.
func (h UpdateRegionCommandHandler) Handle(ctx context.Context, cmd UpdateRegionCommand) error {
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

	r, err := uow.RegionRepository().Get(ctx, cmd.RegionID())
	if err != nil {
		return err
	}

	if err = r.Rename(cmd.Name()); err != nil {
		return err
	}

	if err = uow.RegionRepository().Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
