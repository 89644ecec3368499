package commands_test

import (
	"testing"

	"fixxo/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteAllRequestsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	riderEntity := newFixtureRider(t)
	riderEntity.SetAvailability(false)

	cmd, err := commands.NewCompleteAllRequestsCommand(riderEntity.ID())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		riderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		requestRepo.On("CompleteAllActive", ctx, riderEntity.ID()).Return(int64(3), nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteAllRequestsCommandHandler(factory)
	completed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), completed)
	assert.True(t, riderEntity.IsAvailable())
	requestRepo.AssertExpectations(t)
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteAllRequestsCommandHandler_Handle_ZeroMatches(t *testing.T) {
	ctx := t.Context()
	riderEntity := newFixtureRider(t)
	riderEntity.SetAvailability(false)

	cmd, err := commands.NewCompleteAllRequestsCommand(riderEntity.ID())
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		riderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		requestRepo.On("CompleteAllActive", ctx, riderEntity.ID()).Return(int64(0), nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteAllRequestsCommandHandler(factory)
	completed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(0), completed)
	assert.True(t, riderEntity.IsAvailable(), "rider is freed even when nothing matched")
}
