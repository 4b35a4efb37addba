package commands

import (
	"context"
	"errors"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var (
	ErrDeleteTankCommandIsNotConstructed = errors.New(
		"DeleteTankCommand must be created via NewDeleteTankCommand constructor",
	)

	// ErrTankIsInUse is returned when deleting a tank that orders still
	// reference, including finished ones kept for history.
	ErrTankIsInUse = errors.New("tank is referenced by orders")
)

// DeleteTankCommand represents an admin removing a tank.
type DeleteTankCommand struct { //nolint:recvcheck //using for validation
	tankID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteTankCommand creates a command to delete a tank.
func NewDeleteTankCommand(tankID kernel.UUID) (DeleteTankCommand, error) {
	cmd := DeleteTankCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTankID(tankID); err != nil {
		return DeleteTankCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTankCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTankCommandIsNotConstructed)
}

// TankID returns the tank to delete.
func (c DeleteTankCommand) TankID() kernel.UUID {
	return c.tankID
}

func (c *DeleteTankCommand) setTankID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.tankID = id
	return nil
}

// DeleteTankCommandHandler removes tanks no order references.
type DeleteTankCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteTankCommandHandler creates a handler for tank deletion.
func NewDeleteTankCommandHandler(uowFactory CatalogUoWFactory) DeleteTankCommandHandler {
	return DeleteTankCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the tank and its region links. Fails with ErrTankIsInUse
// while any order references the tank.
func (h DeleteTankCommandHandler) Handle(ctx context.Context, cmd DeleteTankCommand) error {
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

	inUse, err := uow.OrderRepository().ExistsForTank(ctx, t.ID())
	if err != nil {
		return err
	}
	if inUse {
		return ErrTankIsInUse
	}

	if err = uow.TankRepository().Delete(ctx, t.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
