package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/pkg/guard"
)

var ErrAdvanceRequestCommandIsNotConstructed = errors.New(
	"AdvanceRequestCommand must be created via NewAdvanceRequestCommand constructor",
)

// AdvanceRequestCommand represents a rider moving one of their requests to
// a new status. The rider ID comes from the identity layer and is trusted;
// the handler still verifies the request is assigned to that rider.
//
// Example:
//
//	cmd, err := NewAdvanceRequestCommand(requestID, riderID, request.EnRoute)
//	if err != nil {
//	    return err
//	}
//	notification, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, request.ErrIllegalTransition) {
//	    // the status machine rejected the move
//	}
type AdvanceRequestCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	riderID   kernel.UUID
	target    request.Status

	guard guard.ConstructorGuard
}

// NewAdvanceRequestCommand creates a command to advance a request's status.
func NewAdvanceRequestCommand(
	requestID, riderID kernel.UUID, target request.Status,
) (AdvanceRequestCommand, error) {
	if err := errors.Join(
		requestID.Validate(),
		riderID.Validate(),
		target.Validate(),
	); err != nil {
		return AdvanceRequestCommand{}, err
	}

	return AdvanceRequestCommand{
		requestID: requestID,
		riderID:   riderID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceRequestCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceRequestCommandIsNotConstructed)
}

// RequestID returns the target request ID.
func (c AdvanceRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// RiderID returns the acting rider's ID.
func (c AdvanceRequestCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Target returns the desired status.
func (c AdvanceRequestCommand) Target() request.Status {
	return c.target
}
