package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var (
	ErrDeleteRegionCommandIsNotConstructed = errors.New(
		"DeleteRegionCommand must be created via NewDeleteRegionCommand constructor",
	)

	// ErrRegionIsInUse is returned when deleting a region that still has
	// customers or drivers. Tank links alone do not block deletion.
	ErrRegionIsInUse = errors.New("region still has customers or drivers")
)

// DeleteRegionCommand represents an admin removing a region.
type DeleteRegionCommand struct { //nolint:recvcheck //using for validation
	regionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRegionCommand creates a command to delete a region.
func NewDeleteRegionCommand(regionID kernel.UUID) (DeleteRegionCommand, error) {
	cmd := DeleteRegionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRegionID(regionID); err != nil {
		return DeleteRegionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRegionCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRegionCommandIsNotConstructed)
}

// RegionID returns the region to delete.
func (c DeleteRegionCommand) RegionID() kernel.UUID {
	return c.regionID
}

func (c *DeleteRegionCommand) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}

// DeleteRegionCommandHandler removes regions nobody lives in.
type DeleteRegionCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteRegionCommandHandler creates a handler for region deletion.
func NewDeleteRegionCommandHandler(uowFactory CatalogUoWFactory) DeleteRegionCommandHandler {
	return DeleteRegionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the region. Fails with ErrRegionIsInUse while any
// customer or driver still belongs to it.
func (h DeleteRegionCommandHandler) Handle(ctx context.Context, cmd DeleteRegionCommand) error {
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

	hasCustomers, err := uow.CustomerRepository().ExistsInRegion(ctx, r.ID())
	if err != nil {
		return err
	}
	if hasCustomers {
		return ErrRegionIsInUse
	}

	hasDrivers, err := uow.DriverRepository().ExistsInRegion(ctx, r.ID())
	if err != nil {
		return err
	}
	if hasDrivers {
		return ErrRegionIsInUse
	}

	if err = uow.RegionRepository().Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
