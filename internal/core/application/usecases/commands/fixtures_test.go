package commands_test

import (
	"testing"
	"time"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/customer"
	"suqia/internal/core/domain/model/driver"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/core/domain/model/region"
	"suqia/internal/core/domain/model/tank"
	"suqia/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func testCustomer(t *testing.T, regionID kernel.UUID) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), kernel.NewUUID(), regionID)
	require.NoError(t, err)
	return c
}

func testDriver(t *testing.T, regionID kernel.UUID) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), regionID)
	require.NoError(t, err)
	return d
}

func testRegionWithID(t *testing.T, id kernel.UUID) *region.Region {
	t.Helper()
	r, err := region.NewRegion(id, "Damascus")
	require.NoError(t, err)
	return r
}

func testUser(t *testing.T, id kernel.UUID, role account.Role, regionID *kernel.UUID) *account.User {
	t.Helper()
	u, err := account.NewUser(id, "amira@example.com", "$2a$10$abcdefghijklmnopqrstuv",
		"Amira Haddad", "+963-11-1234567", "Main St 4", role, regionID, time.Now().UTC())
	require.NoError(t, err)
	return u
}

func testTank(t *testing.T, regionIDs ...kernel.UUID) *tank.Tank {
	t.Helper()
	tk, err := tank.NewTank(kernel.NewUUID(), "Al-Shifa", 1000, "Drinking", testMoney(t, 50.00), "", regionIDs)
	require.NoError(t, err)
	return tk
}

func testPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), 3,
		testMoney(t, 50.00), time.Now().UTC())
	require.NoError(t, err)
	return o
}

func testDriverPrincipal(t *testing.T, d *driver.Driver) services.Principal {
	t.Helper()
	p, err := services.NewPrincipal(account.RoleDriver, d.ID(), d.RegionID())
	require.NoError(t, err)
	return p
}

func testCustomerPrincipal(t *testing.T, c *customer.Customer) services.Principal {
	t.Helper()
	p, err := services.NewPrincipal(account.RoleCustomer, c.ID(), c.RegionID())
	require.NoError(t, err)
	return p
}

func testAdminPrincipal(t *testing.T) services.Principal {
	t.Helper()
	p, err := services.NewAdminPrincipal(kernel.NewUUID())
	require.NoError(t, err)
	return p
}
