// Package account provides the User identity aggregate and the Role set.
// A User is the login record; the Customer and Driver aggregates reference
// it and carry the role-specific state.
package account

import (
	"errors"
	"strings"
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"
)

// Field length bounds.
const (
	MaxFullNameLength = 100
	MaxAddressLength  = 200
)

var (
	// ErrEmailIsInvalid is returned when the email is empty or malformed.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPasswordHashIsRequired is returned when the password hash is empty.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrFullNameIsRequired is returned when the full name is empty.
	ErrFullNameIsRequired = errs.NewValueIsRequiredError("fullName")
	// ErrRegionIsRequired is returned when a customer or driver user carries no region.
	ErrRegionIsRequired = errs.NewValueIsRequiredError("regionID")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
	// ErrAdminAccountIsProtected is returned when locking or relocating an admin account.
	ErrAdminAccountIsProtected = errs.NewValueIsInvalidError("role")
)

// User is the identity record behind every actor. It stores the bcrypt
// password hash, never the password itself. Customer and driver users carry
// the region they live in; admin users carry none.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	fullName     string
	phone        string
	address      string
	role         Role
	regionID     *kernel.UUID
	createdAt    time.Time
	lockedUntil  *time.Time

	isConstructed bool
}

// NewUser creates an identity record. Non-admin roles require a region.
func NewUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	fullName string,
	phone string,
	address string,
	role Role,
	regionID *kernel.UUID,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:         phone,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setFullName(fullName),
		u.setAddress(address),
		u.setRole(role, regionID),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(
	id kernel.UUID,
	email string,
	passwordHash string,
	fullName string,
	phone string,
	address string,
	role Role,
	regionID *kernel.UUID,
	createdAt time.Time,
	lockedUntil *time.Time,
) (*User, error) {
	u, err := NewUser(id, email, passwordHash, fullName, phone, address, role, regionID, createdAt)
	if err != nil {
		return nil, err
	}

	u.lockedUntil = lockedUntil
	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by id.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's login email, lowercased.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the bcrypt hash of the user's password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.fullName
}

// Phone returns the user's phone number, possibly empty.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the user's address, possibly empty.
func (u *User) Address() string {
	return u.address
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// RegionID returns the user's region, or nil for admins.
func (u *User) RegionID() *kernel.UUID {
	return u.regionID
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// LockedUntil returns the lockout end, or nil when the account is not locked.
func (u *User) LockedUntil() *time.Time {
	return u.lockedUntil
}

// IsLocked reports whether the account is locked out at the given instant.
func (u *User) IsLocked(now time.Time) bool {
	return u.lockedUntil != nil && u.lockedUntil.After(now)
}

// Lock blocks sign-in until the given instant. Admin accounts cannot be
// locked.
func (u *User) Lock(until time.Time) error {
	if u.role == RoleAdmin {
		return ErrAdminAccountIsProtected
	}
	if until.IsZero() {
		return errs.NewValueIsRequiredError("until")
	}

	u.lockedUntil = &until
	return nil
}

// Unlock lifts the lockout.
func (u *User) Unlock() {
	u.lockedUntil = nil
}

// UpdateProfile replaces the user's editable profile fields.
func (u *User) UpdateProfile(fullName, phone, address string) error {
	if err := errors.Join(
		u.setFullName(fullName),
		u.setAddress(address),
	); err != nil {
		return err
	}

	u.phone = phone
	return nil
}

// MoveToRegion relocates a customer or driver account to another region.
func (u *User) MoveToRegion(regionID kernel.UUID) error {
	if u.role == RoleAdmin {
		return ErrAdminAccountIsProtected
	}
	if err := regionID.Validate(); err != nil {
		return err
	}

	u.regionID = &regionID
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

// setEmail normalizes and checks the login email. The check is a shape
// check only; uniqueness is the repository's concern.
func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrEmailIsInvalid
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setFullName(name string) error {
	if name == "" {
		return ErrFullNameIsRequired
	}
	if len(name) > MaxFullNameLength {
		return errs.NewValueIsOutOfRangeError("fullName", len(name), 1, MaxFullNameLength)
	}
	u.fullName = name
	return nil
}

func (u *User) setAddress(address string) error {
	if len(address) > MaxAddressLength {
		return errs.NewValueIsOutOfRangeError("address", len(address), 0, MaxAddressLength)
	}
	u.address = address
	return nil
}

func (u *User) setRole(role Role, regionID *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if role != RoleAdmin {
		if regionID == nil {
			return ErrRegionIsRequired
		}
		if err := regionID.Validate(); err != nil {
			return err
		}
	}

	u.role = role
	u.regionID = regionID
	return nil
}

func (u *User) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = t
	return nil
}
