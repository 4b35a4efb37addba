package commands_test

import (
	"testing"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateDriverCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	oldRegionID := kernel.NewUUID()
	newRegionID := kernel.NewUUID()
	d := testDriver(t, oldRegionID)
	u := testUser(t, d.UserID(), account.RoleDriver, &oldRegionID)
	r := testRegionWithID(t, newRegionID)

	cmd, err := commands.NewUpdateDriverCommand(d.ID(), "Omar S.",
		"+963-11-7654321", newRegionID)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	regionRepo := new(MockRegionRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("RegionRepository").Return(regionRepo)
	uow.On("UserRepository").Return(userRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		regionRepo.On("Get", ctx, newRegionID).Return(r, nil).Once(),
		userRepo.On("Get", ctx, d.UserID()).Return(u, nil).Once(),
		userRepo.On("Update", ctx, u).Return(nil).Once(),
		driverRepo.On("Update", ctx, d).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, "Omar S.", u.FullName())
	require.Equal(t, "+963-11-7654321", u.Phone())
	require.Equal(t, "Main St 4", u.Address())
	require.True(t, d.RegionID().IsEqual(newRegionID))
	driverRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestUpdateDriverCommandHandler_Handle_UnknownRegion(t *testing.T) {
	ctx := t.Context()
	oldRegionID := kernel.NewUUID()
	newRegionID := kernel.NewUUID()
	d := testDriver(t, oldRegionID)

	cmd, err := commands.NewUpdateDriverCommand(d.ID(), "Omar S.", "", newRegionID)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	regionRepo := new(MockRegionRepository)
	uow := new(MockUoW)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("RegionRepository").Return(regionRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	driverRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
	regionRepo.On("Get", ctx, newRegionID).
		Return(nil, errs.NewObjectNotFoundError("regionID", newRegionID)).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
