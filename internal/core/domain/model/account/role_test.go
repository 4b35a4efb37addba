package account_test

import (
	"testing"

	"suqia/internal/core/domain/model/account"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	for _, r := range []account.Role{account.RoleAdmin, account.RoleCustomer, account.RoleDriver} {
		require.NoError(t, r.Validate(), r.String())
	}

	require.Error(t, account.RoleUnknown.Validate())
	require.Error(t, account.Role(42).Validate())
}

func TestRoleFromString(t *testing.T) {
	t.Run("round-trips every valid role", func(t *testing.T) {
		for _, r := range []account.Role{account.RoleAdmin, account.RoleCustomer, account.RoleDriver} {
			parsed, err := account.RoleFromString(r.String())

			require.NoError(t, err)
			assert.Equal(t, r, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := account.RoleFromString("Manager")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Admin", account.RoleAdmin.String())
	assert.Equal(t, "Customer", account.RoleCustomer.String())
	assert.Equal(t, "Driver", account.RoleDriver.String())
	assert.Equal(t, "Unknown", account.RoleUnknown.String())
}
