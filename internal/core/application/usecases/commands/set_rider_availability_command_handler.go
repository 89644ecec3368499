package commands

import (
	"context"
)

// SetRiderAvailabilityCommandHandler handles manual availability toggles.
type SetRiderAvailabilityCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewSetRiderAvailabilityCommandHandler creates a handler for availability toggles.
func NewSetRiderAvailabilityCommandHandler(uowFactory RiderUoWFactory) SetRiderAvailabilityCommandHandler {
	return SetRiderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability toggle.
// The write is an unconditional overwrite; setting the current value again
// is a no-op in effect.
func (h *SetRiderAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetRiderAvailabilityCommand) error {
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

	riderEntity.SetAvailability(cmd.Available())

	if err = riderRepo.Update(ctx, riderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
