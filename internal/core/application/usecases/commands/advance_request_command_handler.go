package commands

import (
	"context"

	"fixxo/internal/core/domain/services"
	"fixxo/internal/pkg/errs"
)

// AdvanceRequestCommandHandler orchestrates a status transition.
// The request's status and its rider's availability are written in the
// same transaction so the pair never drifts through this path. The
// availability rule: terminal targets free the rider, every other target
// marks the rider busy, as an unconditional overwrite.
type AdvanceRequestCommandHandler struct {
	uowFactory UoWFactory
	composer   services.NotificationComposer
}

// NewAdvanceRequestCommandHandler creates a handler for status transitions.
func NewAdvanceRequestCommandHandler(uowFactory UoWFactory) AdvanceRequestCommandHandler {
	return AdvanceRequestCommandHandler{
		uowFactory: uowFactory,
		composer:   services.NewNotificationComposer(),
	}
}

// Handle processes the advance command and returns the composed customer
// notification, or nil when the target status does not notify.
//
// A request assigned to a different rider fails as not-found: the caller
// learns nothing about other riders' requests. Advancing to the current
// status is an idempotent no-op that re-surfaces the notification.
func (h *AdvanceRequestCommandHandler) Handle(
	ctx context.Context, cmd AdvanceRequestCommand,
) (*services.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.RequestRepository()
	riderRepo := uow.RiderRepository()

	requestEntity, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return nil, err
	}
	if !requestEntity.IsOwnedBy(cmd.RiderID()) {
		return nil, errs.NewObjectNotFoundError("requestId", cmd.RequestID())
	}

	riderEntity, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return nil, err
	}

	if err = requestEntity.AdvanceTo(cmd.Target()); err != nil {
		return nil, err
	}
	riderEntity.SetAvailability(cmd.Target().IsTerminal())

	if err = requestRepo.Update(ctx, requestEntity); err != nil {
		return nil, err
	}
	if err = riderRepo.Update(ctx, riderEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.composer.Compose(cmd.Target(), requestEntity, riderEntity)
}
