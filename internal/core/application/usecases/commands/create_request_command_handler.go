package commands

import (
	"context"

	"fixxo/internal/core/domain/model/request"
)

// CreateRequestCommandHandler handles customer intake of service requests.
type CreateRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRequestCommandHandler creates a handler for request intake.
func NewCreateRequestCommandHandler(uowFactory RequestUoWFactory) CreateRequestCommandHandler {
	return CreateRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command.
// Creates a new request aggregate in the new status and persists it within
// a transaction.
func (h *CreateRequestCommandHandler) Handle(ctx context.Context, cmd CreateRequestCommand) error {
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

	details, err := cmd.Details()
	if err != nil {
		return err
	}

	requestEntity, err := request.NewRequest(
		cmd.RequestID(), cmd.UserID(), cmd.UserPhone(), cmd.Service(), details)
	if err != nil {
		return err
	}

	requestRepo := uow.RequestRepository()
	if err = requestRepo.Add(ctx, requestEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
