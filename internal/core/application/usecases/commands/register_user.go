package commands

import (
	"context"
	"errors"
	"time"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/customer"
	"suqia/internal/core/domain/model/driver"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"
	"suqia/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// RegisterUserCommand represents a self-service registration as a customer
// or a driver. Admin accounts are seeded, never registered.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	fullName string
	phone    string
	address  string
	role     account.Role
	regionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email string,
	password string,
	fullName string,
	phone string,
	address string,
	role account.Role,
	regionID kernel.UUID,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		email:    email,
		fullName: fullName,
		phone:    phone,
		address:  address,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPassword(password),
		cmd.setRole(role),
		cmd.setRegionID(regionID),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the id the new user will be created under.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password. It is hashed before anything is
// persisted and never leaves the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// FullName returns the user's display name.
func (c RegisterUserCommand) FullName() string {
	return c.fullName
}

// Phone returns the user's phone number, possibly empty.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Address returns the user's address, possibly empty.
func (c RegisterUserCommand) Address() string {
	return c.address
}

// Role returns the requested role, Customer or Driver.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// RegionID returns the region the new user belongs to.
func (c RegisterUserCommand) RegionID() kernel.UUID {
	return c.regionID
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	if len(password) < MinPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), MinPasswordLength, "unbounded")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if role != account.RoleCustomer && role != account.RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause("role",
			errors.New("only Customer and Driver accounts can be registered"))
	}
	c.role = role
	return nil
}

func (c *RegisterUserCommand) setRegionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.regionID = id
	return nil
}

// RegisterUserCommandHandler creates the identity record and the matching
// Customer or Driver aggregate in one transaction. A duplicate email
// surfaces as the user repository's unique-violation error and rolls the
// whole registration back.
type RegisterUserCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle registers the user.
func (h RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
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

	if _, err = uow.RegionRepository().Get(ctx, cmd.RegionID()); err != nil {
		return err
	}

	regionID := cmd.RegionID()
	user, err := account.NewUser(
		cmd.UserID(),
		cmd.Email(),
		hash,
		cmd.FullName(),
		cmd.Phone(),
		cmd.Address(),
		cmd.Role(),
		&regionID,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	switch cmd.Role() {
	case account.RoleCustomer:
		var cust *customer.Customer
		cust, err = customer.NewCustomer(kernel.NewUUID(), user.ID(), regionID)
		if err != nil {
			return err
		}
		err = uow.CustomerRepository().Add(ctx, cust)
	case account.RoleDriver:
		var drv *driver.Driver
		drv, err = driver.NewDriver(kernel.NewUUID(), user.ID(), regionID)
		if err != nil {
			return err
		}
		err = uow.DriverRepository().Add(ctx, drv)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
