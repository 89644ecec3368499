package commands

import (
	"context"

	"fixxo/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler handles the business logic for rider
// registration. Persists new riders with their hashed portal credentials.
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider registration.
// Requires a RiderUoWFactory for transactional persistence operations.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider creation command.
// Creates a new rider aggregate and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
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
	riderEntity, err := rider.NewRider(
		cmd.RiderID(), cmd.Name(), cmd.Phone(), cmd.Service(),
		cmd.Address(), cmd.Location(), cmd.Credentials())
	if err != nil {
		return err
	}

	if err = riderRepo.Add(ctx, riderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
