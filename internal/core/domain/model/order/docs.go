// Package order provides the Order aggregate root and its lifecycle state
// machine, the core of the water distribution service.
//
// The package includes:
//   - Order: the aggregate root holding the price snapshot, driver assignment,
//     delivery rating, and lifecycle status
//   - Status: a state machine that enforces valid status transitions
//
// Key business rules:
//   - Pending -> Accepted -> InDelivery -> Delivered is the success path
//   - Pending -> Rejected (admin) and Pending -> Cancelled (customer) are the
//     terminal failure paths; Rejected is also reachable from Accepted
//   - price is a snapshot of quantity x tank price per barrel at creation
//     time and is never recomputed
//   - the driver reference is set exactly once, on driver acceptance; the
//     only way to clear it is the admin driver-removal policy (Unassign)
//   - a rating (1..5 stars, optional comment) may be recorded only once the
//     order is Delivered
//
// Illegal transitions never mutate the aggregate: each mutating method
// validates its precondition first and returns an InvalidTransitionError
// on failure, leaving the order untouched.
package order
