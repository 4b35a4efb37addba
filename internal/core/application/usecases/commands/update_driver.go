package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var ErrUpdateDriverCommandIsNotConstructed = errors.New(
	"UpdateDriverCommand must be created via NewUpdateDriverCommand constructor",
)

// UpdateDriverCommand represents an admin editing a driver's profile and
// service region. Orders the driver already claimed stay claimed; only the
// pending pool they see changes.
type UpdateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	fullName string
	phone    string
	regionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateDriverCommand creates a command to edit a driver.
func NewUpdateDriverCommand(
	driverID kernel.UUID,
	fullName string,
	phone string,
	regionID kernel.UUID,
) (UpdateDriverCommand, error) {
	cmd := UpdateDriverCommand{
		fullName: fullName,
		phone:    phone,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setRegionID(regionID),
	); err != nil {
		return UpdateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDriverCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverCommandIsNotConstructed)
}

// DriverID returns the driver to edit.
func (c UpdateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// FullName returns the new display name.
func (c UpdateDriverCommand) FullName() string {
	return c.fullName
}

// Phone returns the new phone number.
func (c UpdateDriverCommand) Phone() string {
	return c.phone
}

// RegionID returns the region the driver moves to.
func (c UpdateDriverCommand) RegionID() kernel.UUID {
	return c.regionID
}

func (c *UpdateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *UpdateDriverCommand) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}

// UpdateDriverCommandHandler edits driver accounts.
type UpdateDriverCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateDriverCommandHandler creates a handler for driver edits.
func NewUpdateDriverCommandHandler(uowFactory AccountUoWFactory) UpdateDriverCommandHandler {
	return UpdateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the driver row and its identity record together. The
// target region must exist.
func (h UpdateDriverCommandHandler) Handle(ctx context.Context, cmd UpdateDriverCommand) error {
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

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	if _, err = uow.RegionRepository().Get(ctx, cmd.RegionID()); err != nil {
		return err
	}

	u, err := uow.UserRepository().Get(ctx, d.UserID())
	if err != nil {
		return err
	}

	if err = u.UpdateProfile(cmd.FullName(), cmd.Phone(), u.Address()); err != nil {
		return err
	}
	if err = u.MoveToRegion(cmd.RegionID()); err != nil {
		return err
	}
	if err = d.MoveToRegion(cmd.RegionID()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, u); err != nil {
		return err
	}
	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
