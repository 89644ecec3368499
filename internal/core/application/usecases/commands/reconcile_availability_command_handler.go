package commands

import (
	"context"

	"fixxo/internal/core/ports"
)

// ReconcileAvailabilityCommandHandler realigns availability flags with the
// request store. A rider with any active request should be busy; a rider
// with none should be available. Only riders whose flag disagrees with
// that rule are written.
type ReconcileAvailabilityCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileAvailabilityCommandHandler creates a handler for the sweep.
func NewReconcileAvailabilityCommandHandler(uowFactory UoWFactory) ReconcileAvailabilityCommandHandler {
	return ReconcileAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation sweep.
// Returns the number of riders whose flag was corrected.
func (h *ReconcileAvailabilityCommandHandler) Handle(
	ctx context.Context, cmd ReconcileAvailabilityCommand,
) (int, error) {
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

	riders, err := riderRepo.GetAll(ctx, ports.RiderFilter{})
	if err != nil {
		return 0, err
	}

	corrected := 0
	for _, riderEntity := range riders {
		active, err := requestRepo.CountActiveByRider(ctx, riderEntity.ID())
		if err != nil {
			return 0, err
		}

		shouldBeAvailable := active == 0
		if riderEntity.IsAvailable() == shouldBeAvailable {
			continue
		}

		riderEntity.SetAvailability(shouldBeAvailable)
		if err = riderRepo.Update(ctx, riderEntity); err != nil {
			return 0, err
		}
		corrected++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return corrected, nil
}
