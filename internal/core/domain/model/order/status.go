package order

import (
	"fmt"

	"suqia/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions:
//
//	Pending ──> Accepted ──> InDelivery ──> Delivered
//	   │            │
//	   │            └──> Rejected
//	   ├──> Rejected
//	   └──> Cancelled
//
// Delivered, Rejected, and Cancelled are terminal: no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly placed order, waiting for
	// a driver in the customer's region (or an admin) to accept it.
	Pending

	// Accepted indicates the order has been taken on: by a driver (who is
	// now assigned) or by an admin (leaving it unassigned).
	Accepted

	// InDelivery indicates the assigned driver has started the delivery.
	InDelivery

	// Delivered is the terminal success state; the customer may now rate
	// the delivery.
	Delivered

	// Rejected is a terminal state reached only by admin rejection.
	Rejected

	// Cancelled is a terminal state reached only by the owning customer
	// while the order was still Pending.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Accepted:   "Accepted",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Accepted:   "Accepted",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Rejected:   "Rejected",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a persisted status name. Returns an error for any
// name outside the six valid states.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected || s == Cancelled
}

// Accept transitions the status to Accepted. Only a Pending order can be
// accepted; a second acceptance of the same order fails here.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Accepted.String())
	}
	return Accepted, nil
}

// Reject transitions the status to Rejected. Valid from Pending and
// Accepted; once delivery is underway the order can no longer be rejected.
func (s Status) Reject() (Status, error) {
	if s != Pending && s != Accepted {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Rejected.String())
	}
	return Rejected, nil
}

// Cancel transitions the status to Cancelled. Valid only from Pending.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// StartDelivery transitions the status to InDelivery. Valid only from
// Accepted.
func (s Status) StartDelivery() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewInvalidTransitionError(s.String(), InDelivery.String())
	}
	return InDelivery, nil
}

// CompleteDelivery transitions the status to Delivered. Valid only from
// InDelivery.
func (s Status) CompleteDelivery() (Status, error) {
	if s != InDelivery {
		return Unknown, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// IsDeletableByOwner reports whether the owning customer may still delete
// an order in this status. Deletion is forbidden once delivery is underway
// or done; terminal failure states (Rejected, Cancelled) remain deletable.
func (s Status) IsDeletableByOwner() bool {
	return s != InDelivery && s != Delivered
}
