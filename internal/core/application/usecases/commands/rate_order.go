package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/core/domain/services"
	"suqia/internal/pkg/errs"
	"suqia/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a customer rating a delivered order of their
// own with a star rating and an optional comment.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	principal services.Principal
	rating    int
	comment   string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a delivered order.
func NewRateOrderCommand(
	orderID kernel.UUID,
	principal services.Principal,
	rating int,
	comment string,
) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
		cmd.setRating(rating),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the order to rate.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the rating customer.
func (c RateOrderCommand) Principal() services.Principal {
	return c.principal
}

// Rating returns the star rating.
func (c RateOrderCommand) Rating() int {
	return c.rating
}

// Comment returns the optional rating comment.
func (c RateOrderCommand) Comment() string {
	return c.comment
}

func (c *RateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RateOrderCommand) setPrincipal(p services.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *RateOrderCommand) setRating(rating int) error {
	if rating < order.MinRating || rating > order.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, order.MinRating, order.MaxRating)
	}
	c.rating = rating
	return nil
}

// RateOrderCommandHandler records delivery ratings.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle records the rating on the delivered order.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	if err = h.policy.CanPerform(cmd.Principal(), services.OperationRate, o, cust.RegionID()); err != nil {
		return err
	}

	if err = o.Rate(cmd.Rating(), cmd.Comment()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
