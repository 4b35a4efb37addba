package commands_test

import (
	"testing"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/core/domain/model/order"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o := testPendingOrder(t, customerID)
	require.NoError(t, o.AcceptBy(kernel.NewUUID()))
	require.NoError(t, o.StartDelivery())
	require.NoError(t, o.CompleteDelivery())
	return o
}

func TestNewRateOrderCommand(t *testing.T) {
	cust := testCustomer(t, kernel.NewUUID())

	t.Run("rating outside bounds", func(t *testing.T) {
		for _, r := range []int{0, 6} {
			_, err := commands.NewRateOrderCommand(kernel.NewUUID(), testCustomerPrincipal(t, cust), r, "")

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, r)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RateOrderCommand

		require.Equal(t, commands.ErrRateOrderCommandIsNotConstructed, cmd.Validate())
	})
}

func TestRateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cust := testCustomer(t, kernel.NewUUID())
	o := deliveredOrder(t, cust.ID())

	cmd, err := commands.NewRateOrderCommand(o.ID(), testCustomerPrincipal(t, cust), 5, "great service")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CustomerRepository").Return(customerRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil).Once(),
		orderRepo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NotNil(t, o.Rating())
	assert.Equal(t, 5, *o.Rating())
	assert.Equal(t, "great service", o.Comment())
	uow.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	cust := testCustomer(t, kernel.NewUUID())
	o := testPendingOrder(t, cust.ID())

	cmd, err := commands.NewRateOrderCommand(o.ID(), testCustomerPrincipal(t, cust), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Nil(t, o.Rating())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRateOrderCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	cust := testCustomer(t, kernel.NewUUID())
	stranger := testCustomer(t, cust.RegionID())
	o := deliveredOrder(t, cust.ID())

	cmd, err := commands.NewRateOrderCommand(o.ID(), testCustomerPrincipal(t, stranger), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CustomerRepository").Return(customerRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	customerRepo.On("Get", ctx, cust.ID()).Return(cust, nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, o.Rating())
}
