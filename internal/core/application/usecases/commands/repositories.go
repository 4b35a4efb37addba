// Package commands contains the write-side use cases. Every command is a
// constructor-guarded value carrying the acting principal where one applies;
// every handler runs its work inside exactly one unit of work.
package commands

import (
	"context"

	"suqia/internal/core/ports"
)

// Unit of Work interfaces narrow the full transaction boundary to the
// repositories each command family actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TankRepoFactory provides access to the tank repository within a transaction.
	TankRepoFactory interface {
		TankRepository() ports.TankRepository
	}

	// RegionRepoFactory provides access to the region repository within a transaction.
	RegionRepoFactory interface {
		RegionRepository() ports.RegionRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order lifecycle commands. The
	// customer repository resolves the order's region for the access
	// policy; the tank repository resolves the price snapshot.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		TankRepoFactory
	}

	// OrderUoWFactory creates order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CatalogUoW manages transactions for region and tank administration.
	// Customer, driver, and order repositories back the referential checks
	// that block deleting a region or tank still in use.
	CatalogUoW interface {
		TxManager
		RegionRepoFactory
		TankRepoFactory
		CustomerRepoFactory
		DriverRepoFactory
		OrderRepoFactory
	}

	// CatalogUoWFactory creates catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// AccountUoW manages transactions for user registration and removal,
	// including the order cascade of customer deletion and the unassign
	// policy of driver deletion.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		CustomerRepoFactory
		DriverRepoFactory
		RegionRepoFactory
		OrderRepoFactory
	}

	// AccountUoWFactory creates account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
