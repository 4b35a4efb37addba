package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command, keeping
// concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary for commands. Each lifecycle
// mutation runs in exactly one unit of work; client code manages the
// transaction explicitly (Begin, deferred Rollback, Commit).
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after a
	// successful Commit is a no-op.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// TankRepository returns a TankRepository bound to the current transaction.
	TankRepository() TankRepository

	// RegionRepository returns a RegionRepository bound to the current transaction.
	RegionRepository() RegionRepository

	// CustomerRepository returns a CustomerRepository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// DriverRepository returns a DriverRepository bound to the current transaction.
	DriverRepository() DriverRepository

	// UserRepository returns a UserRepository bound to the current transaction.
	UserRepository() UserRepository
}
