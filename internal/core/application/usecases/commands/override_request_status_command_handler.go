package commands

import (
	"context"
)

// OverrideRequestStatusCommandHandler handles the privileged admin path
// that bypasses the transition allow-list. The availability coupling still
// applies: if the request has an assigned rider, the rider's flag follows
// the forced status in the same transaction.
type OverrideRequestStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewOverrideRequestStatusCommandHandler creates a handler for status overrides.
func NewOverrideRequestStatusCommandHandler(uowFactory UoWFactory) OverrideRequestStatusCommandHandler {
	return OverrideRequestStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the override command.
func (h *OverrideRequestStatusCommandHandler) Handle(ctx context.Context, cmd OverrideRequestStatusCommand) error {
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

	requestRepo := uow.RequestRepository()
	requestEntity, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = requestEntity.OverrideStatus(cmd.Target()); err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, requestEntity); err != nil {
		return err
	}

	if riderID := requestEntity.AssignedRider(); riderID != nil {
		riderRepo := uow.RiderRepository()
		riderEntity, err := riderRepo.Get(ctx, *riderID)
		if err != nil {
			return err
		}

		riderEntity.SetAvailability(cmd.Target().IsTerminal())
		if err = riderRepo.Update(ctx, riderEntity); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
