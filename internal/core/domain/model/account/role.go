package account

import (
	"fmt"

	"suqia/internal/pkg/errs"
)

// Role is the closed set of parts a user can play. Every request acts as
// exactly one role; there is no role composition.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin manages regions, tanks, users, and every order.
	RoleAdmin

	// RoleCustomer places and rates orders against tanks in their region.
	RoleCustomer

	// RoleDriver accepts and delivers pending orders from their region.
	RoleDriver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin:    "Admin",
		RoleCustomer: "Customer",
		RoleDriver:   "Driver",
	}
}

// RoleFromString parses a persisted role name.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the three valid roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the role name. Safe to call on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}
