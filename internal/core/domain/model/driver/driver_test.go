package driver_test

import (
	"testing"

	"suqia/internal/core/domain/model/driver"
	"suqia/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	t.Run("creates a driver", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		regionID := kernel.NewUUID()

		d, err := driver.NewDriver(id, userID, regionID)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.UserID().IsEqual(userID))
		assert.True(t, d.RegionID().IsEqual(regionID))
	})

	t.Run("fails with invalid ids", func(t *testing.T) {
		var zero kernel.UUID
		valid := kernel.NewUUID()

		_, err := driver.NewDriver(zero, valid, valid)
		require.Error(t, err)

		_, err = driver.NewDriver(valid, zero, valid)
		require.Error(t, err)

		_, err = driver.NewDriver(valid, valid, zero)
		require.Error(t, err)
	})
}

func TestDriver_ServesRegion(t *testing.T) {
	regionID := kernel.NewUUID()
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), regionID)
	require.NoError(t, err)

	assert.True(t, d.ServesRegion(regionID))
	assert.False(t, d.ServesRegion(kernel.NewUUID()))
}

func TestDriver_Validate(t *testing.T) {
	var d *driver.Driver
	require.Equal(t, driver.ErrDriverIsNotConstructed, d.Validate())

	zero := &driver.Driver{}
	require.Equal(t, driver.ErrDriverIsNotConstructed, zero.Validate())
}
