package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents an admin editing a customer's profile
// and region. Existing orders keep their snapshot; only future tank
// availability follows the new region.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	fullName   string
	phone      string
	address    string
	regionID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to edit a customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	fullName string,
	phone string,
	address string,
	regionID kernel.UUID,
) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		fullName: fullName,
		phone:    phone,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setRegionID(regionID),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer to edit.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// FullName returns the new display name.
func (c UpdateCustomerCommand) FullName() string {
	return c.fullName
}

// Phone returns the new phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the new delivery address.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

// RegionID returns the region the customer moves to.
func (c UpdateCustomerCommand) RegionID() kernel.UUID {
	return c.regionID
}

func (c *UpdateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *UpdateCustomerCommand) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}

// UpdateCustomerCommandHandler edits customer accounts.
type UpdateCustomerCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer edits.
func NewUpdateCustomerCommandHandler(uowFactory AccountUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle updates the customer row and its identity record together. The
// target region must exist.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	cust, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if _, err = uow.RegionRepository().Get(ctx, cmd.RegionID()); err != nil {
		return err
	}

	u, err := uow.UserRepository().Get(ctx, cust.UserID())
	if err != nil {
		return err
	}

	if err = u.UpdateProfile(cmd.FullName(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}
	if err = u.MoveToRegion(cmd.RegionID()); err != nil {
		return err
	}
	if err = cust.MoveToRegion(cmd.RegionID()); err != nil {
		return err
	}

	if err = uow.UserRepository().Update(ctx, u); err != nil {
		return err
	}
	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
