package commands_test

import (
	"testing"
	"time"

	"suqia/internal/core/application/usecases/commands"
	"suqia/internal/core/domain/model/account"
	"suqia/internal/core/domain/model/kernel"
	"suqia/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetAccountLockCommandHandler_Handle_Lock(t *testing.T) {
	ctx := t.Context()
	regionID := kernel.NewUUID()
	u := testUser(t, kernel.NewUUID(), account.RoleCustomer, &regionID)

	cmd, err := commands.NewSetAccountLockCommand(u.ID(), true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
		userRepo.On("Update", ctx, u).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAccountLockCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, u.IsLocked(time.Now()))
	userRepo.AssertExpectations(t)
}

func TestSetAccountLockCommandHandler_Handle_Unlock(t *testing.T) {
	ctx := t.Context()
	regionID := kernel.NewUUID()
	u := testUser(t, kernel.NewUUID(), account.RoleDriver, &regionID)
	require.NoError(t, u.Lock(time.Now().Add(time.Hour)))

	cmd, err := commands.NewSetAccountLockCommand(u.ID(), false)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		userRepo.On("Get", ctx, u.ID()).Return(u, nil).Once(),
		userRepo.On("Update", ctx, u).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAccountLockCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.False(t, u.IsLocked(time.Now()))
	userRepo.AssertExpectations(t)
}

func TestSetAccountLockCommandHandler_Handle_AdminAccount(t *testing.T) {
	ctx := t.Context()
	u := testUser(t, kernel.NewUUID(), account.RoleAdmin, nil)

	cmd, err := commands.NewSetAccountLockCommand(u.ID(), true)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("UserRepository").Return(userRepo)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	userRepo.On("Get", ctx, u.ID()).Return(u, nil).Once()

	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetAccountLockCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
