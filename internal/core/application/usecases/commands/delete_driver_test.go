package commands_test

import (
	"testing"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteDriverCommandHandler_Handle_UnassignsActiveOrders(t *testing.T) {
	ctx := t.Context()
	drv := testDriver(t, kernel.NewUUID())

	first := testPendingOrder(t, kernel.NewUUID())
	require.NoError(t, first.AcceptBy(drv.ID()))
	second := testPendingOrder(t, kernel.NewUUID())
	require.NoError(t, second.AcceptBy(drv.ID()))
	require.NoError(t, second.StartDelivery())

	cmd, err := commands.NewDeleteDriverCommand(drv.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	driverRepo.On("Get", ctx, drv.ID()).Return(drv, nil).Once()
	orderRepo.On("GetActiveByDriver", ctx, drv.ID()).Return([]*order.Order{first, second}, nil).Once()
	orderRepo.On("Update", ctx, first).Return(nil).Once()
	orderRepo.On("Update", ctx, second).Return(nil).Once()
	driverRepo.On("Delete", ctx, drv.ID()).Return(nil).Once()
	userRepo.On("Delete", ctx, drv.UserID()).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// both orders are back in the unassigned Accepted pool
	assert.Nil(t, first.Driver())
	assert.Equal(t, order.Accepted, first.Status())
	assert.Nil(t, second.Driver())
	assert.Equal(t, order.Accepted, second.Status())

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestDeleteDriverCommandHandler_Handle_NoActiveOrders(t *testing.T) {
	ctx := t.Context()
	drv := testDriver(t, kernel.NewUUID())

	cmd, err := commands.NewDeleteDriverCommand(drv.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	driverRepo.On("Get", ctx, drv.ID()).Return(drv, nil).Once()
	orderRepo.On("GetActiveByDriver", ctx, drv.ID()).Return([]*order.Order{}, nil).Once()
	driverRepo.On("Delete", ctx, drv.ID()).Return(nil).Once()
	userRepo.On("Delete", ctx, drv.UserID()).Return(nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteDriverCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
