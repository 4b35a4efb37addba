package order_test

import (
	"testing"
	"time"

	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOrder(t *testing.T) *order.Order {
	t.Helper()

	perBarrel, err := kernel.NewMoney(50.00)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		3, perBarrel, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	tankID := kernel.NewUUID()
	perBarrel, _ := kernel.NewMoney(50.00)
	now := time.Now().UTC()

	t.Run("creates pending order with price snapshot", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, tankID, 3, perBarrel, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.True(t, o.TankID().IsEqual(tankID))
		assert.Equal(t, 3, o.Quantity())
		assert.Equal(t, "150.00", o.Price().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
		assert.Nil(t, o.Rating())
	})

	t.Run("snapshot survives later price changes", func(t *testing.T) {
		tankPrice, _ := kernel.NewMoney(45.00)
		o, err := order.NewOrder(validID, customerID, tankID, 2, tankPrice, now)
		require.NoError(t, err)

		// the caller re-reading the tank price later has no effect
		tankPrice, _ = kernel.NewMoney(99.00)
		_ = tankPrice

		assert.Equal(t, "90.00", o.Price().String())
	})

	t.Run("fails with invalid ids", func(t *testing.T) {
		var zero kernel.UUID

		_, err := order.NewOrder(zero, customerID, tankID, 3, perBarrel, now)
		require.Error(t, err)

		_, err = order.NewOrder(validID, zero, tankID, 3, perBarrel, now)
		require.Error(t, err)

		_, err = order.NewOrder(validID, customerID, zero, 3, perBarrel, now)
		require.Error(t, err)
	})

	t.Run("fails with quantity out of range", func(t *testing.T) {
		for _, q := range []int{0, -1, 101, 1000} {
			_, err := order.NewOrder(validID, customerID, tankID, q, perBarrel, now)

			require.Error(t, err, q)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("accepts quantity bounds", func(t *testing.T) {
		o, err := order.NewOrder(validID, customerID, tankID, order.MinQuantity, perBarrel, now)
		require.NoError(t, err)
		assert.Equal(t, "50.00", o.Price().String())

		o, err = order.NewOrder(validID, customerID, tankID, order.MaxQuantity, perBarrel, now)
		require.NoError(t, err)
		assert.Equal(t, "5000.00", o.Price().String())
	})

	t.Run("fails with zero price per barrel", func(t *testing.T) {
		_, err := order.NewOrder(validID, customerID, tankID, 3, kernel.Money{}, now)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with zero order time", func(t *testing.T) {
		_, err := order.NewOrder(validID, customerID, tankID, 3, perBarrel, time.Time{})

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores full state including driver and rating", func(t *testing.T) {
		driverID := kernel.NewUUID()
		rating := 4

		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &driverID,
			5, kernel.MoneyFromCents(25000), time.Now().UTC(),
			order.Delivered, &rating, "fast delivery",
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.IsAssignedTo(driverID))
		assert.Equal(t, 4, *o.Rating())
		assert.Equal(t, "fast delivery", o.Comment())
		assert.Equal(t, "250.00", o.Price().String())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			5, kernel.MoneyFromCents(25000), time.Now().UTC(),
			order.Unknown, nil, "",
		)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails", func(t *testing.T) {
		var o *order.Order

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("zero value fails", func(t *testing.T) {
		o := &order.Order{}

		require.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_AcceptBy(t *testing.T) {
	t.Run("pending order accepts a driver", func(t *testing.T) {
		o := validOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.AcceptBy(driverID))
		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.IsAssignedTo(driverID))
	})

	t.Run("second acceptance fails and keeps the first driver", func(t *testing.T) {
		o := validOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.AcceptBy(first))
		err := o.AcceptBy(second)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.True(t, o.IsAssignedTo(first))
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("invalid driver id is rejected without mutation", func(t *testing.T) {
		o := validOrder(t)
		var zero kernel.UUID

		require.Error(t, o.AcceptBy(zero))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
	})
}

func TestOrder_Accept_Admin(t *testing.T) {
	t.Run("admin acceptance assigns no driver", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Accept())
		assert.Equal(t, order.Accepted, o.Status())
		assert.Nil(t, o.Driver())
	})

	t.Run("accepting twice fails", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Accept())
		require.ErrorIs(t, o.Accept(), errs.ErrInvalidTransition)
	})
}

func TestOrder_Reject(t *testing.T) {
	t.Run("pending order can be rejected", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("accepted order can be rejected", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Accept())

		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.Status())
	})

	t.Run("in-delivery order cannot be rejected", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.AcceptBy(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())

		require.ErrorIs(t, o.Reject(), errs.ErrInvalidTransition)
		assert.Equal(t, order.InDelivery, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order can be cancelled", func(t *testing.T) {
		o := validOrder(t)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("accepted order cannot be cancelled", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.Accept())

		require.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_DeliveryFlow(t *testing.T) {
	t.Run("full success path", func(t *testing.T) {
		o := validOrder(t)
		driverID := kernel.NewUUID()

		require.NoError(t, o.AcceptBy(driverID))
		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.InDelivery, o.Status())

		require.NoError(t, o.CompleteDelivery())
		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.IsAssignedTo(driverID))
	})

	t.Run("cannot start delivery on a pending order", func(t *testing.T) {
		o := validOrder(t)

		require.ErrorIs(t, o.StartDelivery(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("cannot complete before starting", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.AcceptBy(kernel.NewUUID()))

		require.ErrorIs(t, o.CompleteDelivery(), errs.ErrInvalidTransition)
		assert.Equal(t, order.Accepted, o.Status())
	})
}

func TestOrder_Rate(t *testing.T) {
	deliveredOrder := func(t *testing.T) *order.Order {
		o := validOrder(t)
		require.NoError(t, o.AcceptBy(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.CompleteDelivery())
		return o
	}

	t.Run("delivered order can be rated", func(t *testing.T) {
		o := deliveredOrder(t)

		require.NoError(t, o.Rate(5, "excellent"))
		require.NotNil(t, o.Rating())
		assert.Equal(t, 5, *o.Rating())
		assert.Equal(t, "excellent", o.Comment())
	})

	t.Run("comment is optional", func(t *testing.T) {
		o := deliveredOrder(t)

		require.NoError(t, o.Rate(3, ""))
		assert.Equal(t, 3, *o.Rating())
		assert.Empty(t, o.Comment())
	})

	t.Run("pending order cannot be rated", func(t *testing.T) {
		o := validOrder(t)

		err := o.Rate(5, "premature")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, o.Rating())
		assert.Empty(t, o.Comment())
	})

	t.Run("rating out of range is rejected", func(t *testing.T) {
		o := deliveredOrder(t)

		for _, r := range []int{0, -1, 6, 100} {
			err := o.Rate(r, "")

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, r)
		}
		assert.Nil(t, o.Rating())
	})
}

func TestOrder_Unassign(t *testing.T) {
	t.Run("accepted order loses its driver and stays accepted", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.AcceptBy(kernel.NewUUID()))

		require.NoError(t, o.Unassign())
		assert.Nil(t, o.Driver())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("in-delivery order resets to accepted", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.AcceptBy(kernel.NewUUID()))
		require.NoError(t, o.StartDelivery())

		require.NoError(t, o.Unassign())
		assert.Nil(t, o.Driver())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("delivered order keeps its driver", func(t *testing.T) {
		o := validOrder(t)
		driverID := kernel.NewUUID()
		require.NoError(t, o.AcceptBy(driverID))
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.CompleteDelivery())

		require.ErrorIs(t, o.Unassign(), errs.ErrInvalidTransition)
		assert.True(t, o.IsAssignedTo(driverID))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("unassigned order cannot be unassigned", func(t *testing.T) {
		o := validOrder(t)

		require.ErrorIs(t, o.Unassign(), errs.ErrInvalidTransition)
	})
}

func TestOrder_Ownership(t *testing.T) {
	perBarrel, _ := kernel.NewMoney(10)
	customerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), 1, perBarrel, time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(customerID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
	assert.False(t, o.IsAssignedTo(kernel.NewUUID()))
}
