package customer_test

import (
	"testing"

	"suqia/internal/core/domain/model/customer"
	"suqia/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates a customer", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		regionID := kernel.NewUUID()

		c, err := customer.NewCustomer(id, userID, regionID)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.True(t, c.UserID().IsEqual(userID))
		assert.True(t, c.RegionID().IsEqual(regionID))
	})

	t.Run("fails with invalid ids", func(t *testing.T) {
		var zero kernel.UUID
		valid := kernel.NewUUID()

		_, err := customer.NewCustomer(zero, valid, valid)
		require.Error(t, err)

		_, err = customer.NewCustomer(valid, zero, valid)
		require.Error(t, err)

		_, err = customer.NewCustomer(valid, valid, zero)
		require.Error(t, err)
	})
}

func TestCustomer_Validate(t *testing.T) {
	var c *customer.Customer
	require.Equal(t, customer.ErrCustomerIsNotConstructed, c.Validate())

	zero := &customer.Customer{}
	require.Equal(t, customer.ErrCustomerIsNotConstructed, zero.Validate())
}
