package commands

import (
	"context"
	"errors"
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/guard"
)

var ErrSetAccountLockCommandIsNotConstructed = errors.New(
	"SetAccountLockCommand must be created via NewSetAccountLockCommand constructor",
)

// lockoutDuration is the lockout window applied when an admin locks an
// account. Long enough to act as indefinite until an admin unlocks it.
const lockoutDuration = 100 * 365 * 24 * time.Hour

// SetAccountLockCommand represents an admin locking or unlocking a
// customer or driver account. A locked account cannot sign in; its data
// and orders stay untouched.
type SetAccountLockCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	locked bool

	guard guard.ConstructorGuard
}

// NewSetAccountLockCommand creates a command to toggle an account lockout.
func NewSetAccountLockCommand(userID kernel.UUID, locked bool) (SetAccountLockCommand, error) {
	cmd := SetAccountLockCommand{
		locked: locked,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return SetAccountLockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAccountLockCommand) Validate() error {
	return c.guard.Validate(ErrSetAccountLockCommandIsNotConstructed)
}

// UserID returns the account to lock or unlock.
func (c SetAccountLockCommand) UserID() kernel.UUID {
	return c.userID
}

// Locked reports whether the account should end up locked.
func (c SetAccountLockCommand) Locked() bool {
	return c.locked
}

func (c *SetAccountLockCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

// SetAccountLockCommandHandler toggles account lockouts.
type SetAccountLockCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetAccountLockCommandHandler creates a handler for lockout toggles.
func NewSetAccountLockCommandHandler(uowFactory AccountUoWFactory) SetAccountLockCommandHandler {
	return SetAccountLockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks or unlocks the account. Admin accounts refuse the lock.
func (h SetAccountLockCommandHandler) Handle(ctx context.Context, cmd SetAccountLockCommand) error {
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

	u, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if cmd.Locked() {
		if err = u.Lock(time.Now().Add(lockoutDuration)); err != nil {
			return err
		}
	} else {
		u.Unlock()
	}

	if err = uow.UserRepository().Update(ctx, u); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
