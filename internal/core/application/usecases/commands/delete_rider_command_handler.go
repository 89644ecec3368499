package commands

import (
	"context"
	"errors"
)

// ErrRiderHasActiveRequests is returned when deleting a rider that still
// holds assigned, non-terminal requests. The administrator must reassign or
// close those requests first.
var ErrRiderHasActiveRequests = errors.New("rider has active requests")

// DeleteRiderCommandHandler handles rider removal.
// Refuses deletion while the rider holds active requests so no request is
// left pointing at a missing rider.
type DeleteRiderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteRiderCommandHandler creates a handler for rider removal.
// Requires a UoWFactory: the active-request check and the delete run in one
// transaction.
func NewDeleteRiderCommandHandler(uowFactory UoWFactory) DeleteRiderCommandHandler {
	return DeleteRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider deletion command.
// Returns ErrRiderHasActiveRequests if the rider still holds active
// requests.
func (h *DeleteRiderCommandHandler) Handle(ctx context.Context, cmd DeleteRiderCommand) error {
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
	requestRepo := uow.RequestRepository()

	// Get first so a missing rider surfaces as not-found, not as a
	// silent no-op delete.
	if _, err := riderRepo.Get(ctx, cmd.RiderID()); err != nil {
		return err
	}

	active, err := requestRepo.CountActiveByRider(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrRiderHasActiveRequests
	}

	if err = riderRepo.Delete(ctx, cmd.RiderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
