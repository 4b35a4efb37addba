package commands_test

import (
	"errors"
	"testing"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 3)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("quantity outside bounds", func(t *testing.T) {
		for _, q := range []int{0, 101} {
			_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), q)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, q)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.Equal(t, commands.ErrCreateOrderCommandIsNotConstructed, cmd.Validate())
	})
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	regionID := kernel.NewUUID()
	cust := testCustomer(t, regionID)
	tk := testTank(t, regionID)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(), tk.ID(), 3)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	tankRepo := new(MockTankRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("TankRepository").Return(tankRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil).Once(),
		tankRepo.On("Get", ctx, tk.ID()).Return(tk, nil).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pending &&
				o.Price().String() == "150.00" &&
				o.Driver() == nil
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_TankOutsideRegion(t *testing.T) {
	ctx := t.Context()
	cust := testCustomer(t, kernel.NewUUID())
	tk := testTank(t, kernel.NewUUID())
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(), tk.ID(), 3)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	tankRepo := new(MockTankRepository)
	uow := new(MockUoW)
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("TankRepository").Return(tankRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil).Once()
	tankRepo.On("Get", ctx, tk.ID()).Return(tk, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	regionID := kernel.NewUUID()
	cust := testCustomer(t, regionID)
	tk := testTank(t, regionID)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), cust.ID(), tk.ID(), 3)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	tankRepo := new(MockTankRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("TankRepository").Return(tankRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil).Once()
	tankRepo.On("Get", ctx, tk.ID()).Return(tk, nil).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
