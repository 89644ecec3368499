package commands_test

import (
	"testing"
	"time"

	"fixxo/internal/core/application/usecases/commands"
	"fixxo/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	requestedAt := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateRequestCommand(
		"user-42", "+91 98200 00042", kernel.ServiceIroning,
		"Powai, Mumbai", nil, &requestedAt, "2 hours")
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("Add", ctx, mock.AnythingOfType("*request.Request")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateRequestCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateRequestCommand(
		"", "+91 98200 00042", kernel.ServiceIroning, "", nil, nil, "")
	require.Error(t, err)

	_, err = commands.NewCreateRequestCommand(
		"user-42", "", kernel.ServiceIroning, "", nil, nil, "")
	require.Error(t, err)

	_, err = commands.NewCreateRequestCommand(
		"user-42", "+91 98200 00042", kernel.ServiceUnknown, "", nil, nil, "")
	require.Error(t, err)
}

func TestCreateRequestCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateRequestCommand{} // not constructed properly

	factory := new(MockRequestUoWFactory)
	handler := commands.NewCreateRequestCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateRequestCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
