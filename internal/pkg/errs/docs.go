// Package errs provides standardized error types for the water distribution service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the failure kinds the operation layer reports to callers:
//   - ObjectNotFoundError: a referenced entity is absent or outside the caller's scope
//   - InvalidTransitionError: an order state change whose precondition does not hold
//   - ValueIsInvalidError / ValueIsOutOfRangeError / ValueIsRequiredError: malformed input
//   - ConcurrentWriteError: a lost race on a shared mutable record
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All of these are business outcomes, not system faults: handlers recover them
// at the operation boundary and surface them as user-visible notices.
package errs
