package commands_test

import (
	"testing"

	"fixxo/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetRiderAvailabilityCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	riderEntity := newFixtureRider(t)

	cmd, err := commands.NewSetRiderAvailabilityCommand(riderEntity.ID(), false)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSetRiderAvailabilityCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, riderEntity.IsAvailable())
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateRiderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	riderEntity := newFixtureRider(t)

	cmd, err := commands.NewUpdateRiderCommand(
		riderEntity.ID(), "Asha P.", "+91 98200 22222",
		riderEntity.Service(), "Bandra", nil)
	require.NoError(t, err)

	riderRepo := new(MockRiderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RiderRepository").Return(riderRepo).Once(),
		riderRepo.On("Get", ctx, riderEntity.ID()).Return(riderEntity, nil).Once(),
		riderRepo.On("Update", ctx, mock.AnythingOfType("*rider.Rider")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRiderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateRiderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Asha P.", riderEntity.Name())
	assert.Equal(t, "Bandra", riderEntity.Address())
	riderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
