package queries_test

import (
	"testing"

	"suqia/internal/core/application/usecases/queries"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/services"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableTanksQuery(t *testing.T) {
	t.Run("valid customer id", func(t *testing.T) {
		customerID := kernel.NewUUID()

		q, err := queries.NewGetAvailableTanksQuery(customerID)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.True(t, q.CustomerID().IsEqual(customerID))
	})

	t.Run("zero customer id", func(t *testing.T) {
		_, err := queries.NewGetAvailableTanksQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var q queries.GetAvailableTanksQuery

		require.ErrorIs(t, q.Validate(), queries.ErrGetAvailableTanksQueryIsNotConstructed)
	})
}

func TestNewGetPendingOrdersQuery(t *testing.T) {
	_, err := queries.NewGetPendingOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	q, err := queries.NewGetPendingOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewGetAssignedOrdersQuery(t *testing.T) {
	_, err := queries.NewGetAssignedOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	q, err := queries.NewGetAssignedOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	q, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, q.Validate())
}

func TestNewGetOrderDetailsQuery(t *testing.T) {
	principal, err := services.NewAdminPrincipal(kernel.NewUUID())
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		q, qErr := queries.NewGetOrderDetailsQuery(kernel.NewUUID(), principal)

		require.NoError(t, qErr)
		require.NoError(t, q.Validate())
	})

	t.Run("zero order id", func(t *testing.T) {
		_, qErr := queries.NewGetOrderDetailsQuery(kernel.UUID{}, principal)

		require.Error(t, qErr)
	})

	t.Run("unconstructed principal", func(t *testing.T) {
		_, qErr := queries.NewGetOrderDetailsQuery(kernel.NewUUID(), services.Principal{})

		require.ErrorIs(t, qErr, services.ErrPrincipalIsNotConstructed)
	})
}

func TestNewGetAllOrdersQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		q, err := queries.NewGetAllOrdersQuery(nil, nil)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.Nil(t, q.CustomerID())
		require.Nil(t, q.DriverID())
	})

	t.Run("customer filter", func(t *testing.T) {
		customerID := kernel.NewUUID()

		q, err := queries.NewGetAllOrdersQuery(&customerID, nil)

		require.NoError(t, err)
		require.NotNil(t, q.CustomerID())
		require.True(t, q.CustomerID().IsEqual(customerID))
	})

	t.Run("zero customer filter", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery(&kernel.UUID{}, nil)

		require.Error(t, err)
	})

	t.Run("zero driver filter", func(t *testing.T) {
		_, err := queries.NewGetAllOrdersQuery(nil, &kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value query fails validation", func(t *testing.T) {
		var q queries.GetAllOrdersQuery

		require.ErrorIs(t, q.Validate(), queries.ErrGetAllOrdersQueryIsNotConstructed)
	})
}

func TestNewAuthenticateUserQuery(t *testing.T) {
	t.Run("normalizes the email", func(t *testing.T) {
		q, err := queries.NewAuthenticateUserQuery("  Amira@Example.COM ", "secret1")

		require.NoError(t, err)
		require.Equal(t, "amira@example.com", q.Email())
		require.Equal(t, "secret1", q.Password())
	})

	t.Run("requires an email", func(t *testing.T) {
		_, err := queries.NewAuthenticateUserQuery("  ", "secret1")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires a password", func(t *testing.T) {
		_, err := queries.NewAuthenticateUserQuery("a@b.com", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
