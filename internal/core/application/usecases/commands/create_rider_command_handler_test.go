package commands_test

import (
	"errors"
	"testing"

	"fixxo/internal/core/application/usecases/commands"
	"fixxo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRiderCommand(
		"Asha Patel", "+91 98200 11111", kernel.ServiceDogWalker, "Powai, Mumbai", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, cmd.Username())
	assert.NotEmpty(t, cmd.OneTimeToken())

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateRiderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRiderCommand{} // not constructed properly

	factory := new(MockRiderUoWFactory)
	handler := commands.NewCreateRiderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateRiderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateRiderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRiderCommand(
		"Asha Patel", "+91 98200 11111", kernel.ServiceDogWalker, "", nil)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Add", ctx, mock.AnythingOfType("*rider.Rider")).
			Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewCreateRiderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateRiderCommand("", "+91 98200 11111", kernel.ServiceDogWalker, "", nil)
	require.Error(t, err)

	_, err = commands.NewCreateRiderCommand("Asha Patel", "", kernel.ServiceDogWalker, "", nil)
	require.Error(t, err)

	_, err = commands.NewCreateRiderCommand("Asha Patel", "+91 98200 11111", kernel.ServiceUnknown, "", nil)
	require.Error(t, err)
}
