package commands

import (
	"context"
)

// AssignRiderCommandHandler handles manual request assignment.
// The request moves to the assigned status and the rider is marked busy in
// the same transaction.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRiderCommandHandler creates a handler for request assignment.
// Requires a UoWFactory for coordinating updates across both aggregates.
func NewAssignRiderCommandHandler(uowFactory UoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Reassignment of an already-assigned request is allowed while the rider
// has not yet departed; the status machine rejects it afterwards.
func (h *AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
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
	riderRepo := uow.RiderRepository()

	requestEntity, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	riderEntity, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = requestEntity.AssignTo(riderEntity.ID()); err != nil {
		return err
	}
	riderEntity.SetAvailability(false)

	if err = requestRepo.Update(ctx, requestEntity); err != nil {
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
