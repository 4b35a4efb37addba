package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/core/domain/services"
	"suqia/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a request to take on a pending order. A
// driver principal becomes the assigned driver; an admin principal accepts
// the order without assignment.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal services.Principal

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a pending order.
func NewAcceptOrderCommand(orderID kernel.UUID, principal services.Principal) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the order to accept.
func (c AcceptOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the accepting actor.
func (c AcceptOrderCommand) Principal() services.Principal {
	return c.principal
}

func (c *AcceptOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AcceptOrderCommand) setPrincipal(p services.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.principal = p
	return nil
}

// AcceptOrderCommandHandler resolves the accept race between concurrent
// drivers: the write goes through a status-guarded update, so exactly one
// acceptance commits and every loser gets a ConcurrentWriteError.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle accepts the order as the command's principal. Drivers must serve
// the order's region and become the assigned driver; admins accept without
// assigning anyone.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	cust, err := uow.CustomerRepository().Get(ctx, o.CustomerID())
	if err != nil {
		return err
	}

	principal := cmd.Principal()
	if err = h.policy.CanPerform(principal, services.OperationAccept, o, cust.RegionID()); err != nil {
		return err
	}

	if principal.IsAdmin() {
		err = o.Accept()
	} else {
		err = o.AcceptBy(principal.ActorID())
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().UpdateWithStatusGuard(ctx, o, order.Pending); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
