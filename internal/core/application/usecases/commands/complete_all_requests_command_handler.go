package commands

import (
	"context"
)

// CompleteAllRequestsCommandHandler handles the end-of-shift bulk clear.
// Cancelled requests stay cancelled; everything else the rider holds
// becomes completed. The rider is marked available even when zero rows
// matched, all in one transaction.
type CompleteAllRequestsCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteAllRequestsCommandHandler creates a handler for the bulk clear.
func NewCompleteAllRequestsCommandHandler(uowFactory UoWFactory) CompleteAllRequestsCommandHandler {
	return CompleteAllRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bulk completion command.
// Returns the number of requests that changed status.
func (h *CompleteAllRequestsCommandHandler) Handle(
	ctx context.Context, cmd CompleteAllRequestsCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riderRepo := uow.RiderRepository()
	requestRepo := uow.RequestRepository()

	riderEntity, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return 0, err
	}

	completed, err := requestRepo.CompleteAllActive(ctx, cmd.RiderID())
	if err != nil {
		return 0, err
	}

	riderEntity.SetAvailability(true)
	if err = riderRepo.Update(ctx, riderEntity); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return completed, nil
}
