package commands

import (
	"context"
)

// UpdateRiderCommandHandler handles rider profile edits.
type UpdateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewUpdateRiderCommandHandler creates a handler for rider profile edits.
func NewUpdateRiderCommandHandler(uowFactory RiderUoWFactory) UpdateRiderCommandHandler {
	return UpdateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider update command.
// Loads the rider, applies the new profile, and persists the change within
// a transaction.
func (h *UpdateRiderCommandHandler) Handle(ctx context.Context, cmd UpdateRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	riderEntity, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = riderEntity.UpdateProfile(
		cmd.Name(), cmd.Phone(), cmd.Service(), cmd.Address(), cmd.Location()); err != nil {
		return err
	}

	if err = riderRepo.Update(ctx, riderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
