// Package services provides domain services that implement business rules
// spanning multiple aggregates. Its centerpiece is the AccessPolicy, the
// single place deciding which principal may perform which order operation.
package services

import (
	"errors"
	"fmt"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/pkg/errs"
)

// ErrPrincipalIsNotConstructed is returned when using an improperly initialized Principal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal or NewAdminPrincipal")

// Operation is the closed set of order operations the access policy rules on.
type Operation int

const (
	// OperationUnknown represents an invalid or undefined operation.
	OperationUnknown Operation = iota

	// OperationView reads an order's details.
	OperationView

	// OperationAccept takes on a pending order: a driver assigns itself,
	// an admin accepts without assignment.
	OperationAccept

	// OperationReject turns an order down. Admin only.
	OperationReject

	// OperationCancel withdraws a pending order. Owner only.
	OperationCancel

	// OperationRate records the delivery rating. Owner only.
	OperationRate

	// OperationStartDelivery begins the delivery. Assigned driver only.
	OperationStartDelivery

	// OperationCompleteDelivery finishes the delivery. Assigned driver only.
	OperationCompleteDelivery

	// OperationDelete removes an order. Owner or admin.
	OperationDelete
)

func getOperationStrings() map[Operation]string {
	return map[Operation]string{
		OperationUnknown:          "Unknown",
		OperationView:             "View",
		OperationAccept:           "Accept",
		OperationReject:           "Reject",
		OperationCancel:           "Cancel",
		OperationRate:             "Rate",
		OperationStartDelivery:    "StartDelivery",
		OperationCompleteDelivery: "CompleteDelivery",
		OperationDelete:           "Delete",
	}
}

// String returns the operation name. Safe to call on any Operation value.
func (op Operation) String() string {
	if s, ok := getOperationStrings()[op]; ok {
		return s
	}
	return "Unknown"
}

// Validate checks if the Operation value is one of the defined operations.
func (op Operation) Validate() error {
	if _, ok := getOperationStrings()[op]; !ok || op == OperationUnknown {
		return errs.NewValueIsInvalidErrorWithCause("operation",
			fmt.Errorf("%d is not a valid operation", op))
	}
	return nil
}

// Principal is the authenticated actor a request runs as. For customers and
// drivers the actor id is their Customer or Driver aggregate id and the
// region is the one they belong to; for admins the actor id is the user id
// and no region applies.
type Principal struct {
	role     account.Role
	actorID  kernel.UUID
	regionID kernel.UUID

	isConstructed bool
}

// NewPrincipal creates a customer or driver principal.
func NewPrincipal(role account.Role, actorID kernel.UUID, regionID kernel.UUID) (Principal, error) {
	if err := errors.Join(
		role.Validate(),
		actorID.Validate(),
		regionID.Validate(),
	); err != nil {
		return Principal{}, err
	}
	if role == account.RoleAdmin {
		return Principal{}, errs.NewValueIsInvalidErrorWithCause("role",
			errors.New("admin principals carry no region, use NewAdminPrincipal"))
	}

	return Principal{
		role:          role,
		actorID:       actorID,
		regionID:      regionID,
		isConstructed: true,
	}, nil
}

// NewAdminPrincipal creates an admin principal from the admin's user id.
func NewAdminPrincipal(userID kernel.UUID) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}

	return Principal{
		role:          account.RoleAdmin,
		actorID:       userID,
		isConstructed: true,
	}, nil
}

// Validate ensures the Principal was created through a constructor.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// Role returns the principal's role.
func (p Principal) Role() account.Role {
	return p.role
}

// ActorID returns the customer or driver aggregate id, or the user id for admins.
func (p Principal) ActorID() kernel.UUID {
	return p.actorID
}

// RegionID returns the principal's region. Zero for admins.
func (p Principal) RegionID() kernel.UUID {
	return p.regionID
}

// IsAdmin reports whether the principal acts as an admin.
func (p Principal) IsAdmin() bool {
	return p.role == account.RoleAdmin
}

// AccessPolicy decides whether a principal may perform an operation on an
// order. Every answer for an out-of-scope order is "not found", never
// "forbidden": callers learn nothing about records outside their scope.
//
// The policy rules on scope and role only. Whether the order's status
// permits the operation is the aggregate's concern and is checked after
// the policy passes.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanPerform reports whether the principal may perform op on the order.
// customerRegionID is the region of the order's owning customer; drivers
// may only see and accept pending orders from their own region.
//
// Returns nil when permitted and an ObjectNotFoundError for the order id
// otherwise.
func (ap AccessPolicy) CanPerform(
	principal Principal,
	op Operation,
	o *order.Order,
	customerRegionID kernel.UUID,
) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if err := op.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if ap.isPermitted(principal, op, o, customerRegionID) {
		return nil
	}
	return errs.NewObjectNotFoundError("orderID", o.ID())
}

func (ap AccessPolicy) isPermitted(
	principal Principal,
	op Operation,
	o *order.Order,
	customerRegionID kernel.UUID,
) bool {
	switch principal.Role() {
	case account.RoleAdmin:
		switch op {
		case OperationView, OperationAccept, OperationReject, OperationDelete:
			return true
		}
		return false

	case account.RoleCustomer:
		if !o.IsOwnedBy(principal.ActorID()) {
			return false
		}
		switch op {
		case OperationView, OperationCancel, OperationRate, OperationDelete:
			return true
		}
		return false

	case account.RoleDriver:
		switch op {
		case OperationView:
			return o.IsAssignedTo(principal.ActorID()) || ap.isInDriverPool(principal, o, customerRegionID)
		case OperationAccept:
			return ap.isInDriverPool(principal, o, customerRegionID)
		case OperationStartDelivery, OperationCompleteDelivery:
			return o.IsAssignedTo(principal.ActorID())
		}
		return false
	}

	return false
}

// isInDriverPool reports whether the order sits in the driver's pending
// pool: unassigned, non-terminal, and owned by a customer from the
// driver's region.
func (ap AccessPolicy) isInDriverPool(principal Principal, o *order.Order, customerRegionID kernel.UUID) bool {
	return o.Driver() == nil &&
		!o.Status().IsTerminal() &&
		principal.RegionID().IsEqual(customerRegionID)
}
