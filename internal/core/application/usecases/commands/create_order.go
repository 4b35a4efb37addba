package commands

import (
	"context"
	"errors"
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/pkg/errs"
	"suqia/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to order barrels from
// a tank. The tank must serve the customer's region; the order price is
// snapshotted from the tank's price per barrel at handling time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	tankID     kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	tankID kernel.UUID,
	quantity int,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setTankID(tankID),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's id.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TankID returns the tank the order draws from.
func (c CreateOrderCommand) TankID() kernel.UUID {
	return c.tankID
}

// Quantity returns the ordered number of barrels.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setTankID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tankID = id
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity < order.MinQuantity || quantity > order.MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, order.MinQuantity, order.MaxQuantity)
	}
	c.quantity = quantity
	return nil
}

// CreateOrderCommandHandler places new orders. A tank outside the
// customer's region reads as not found, so customers cannot probe the
// catalog of other regions.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle places the order: resolves the customer and tank, checks region
// eligibility, snapshots the price, and persists the Pending order.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	tk, err := uow.TankRepository().Get(ctx, cmd.TankID())
	if err != nil {
		return err
	}
	if !tk.ServesRegion(cust.RegionID()) {
		return errs.NewObjectNotFoundError("tankID", cmd.TankID())
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cust.ID(),
		tk.ID(),
		cmd.Quantity(),
		tk.PricePerBarrel(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
