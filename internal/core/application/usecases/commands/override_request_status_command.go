package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/pkg/guard"
)

var ErrOverrideRequestStatusCommandIsNotConstructed = errors.New(
	"OverrideRequestStatusCommand must be created via NewOverrideRequestStatusCommand constructor",
)

// OverrideRequestStatusCommand represents an administrator forcing a status
// onto a request, bypassing the transition allow-list. Used to repair
// mis-recorded requests, including terminal ones.
type OverrideRequestStatusCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	target    request.Status

	guard guard.ConstructorGuard
}

// NewOverrideRequestStatusCommand creates a command to force a status.
func NewOverrideRequestStatusCommand(
	requestID kernel.UUID, target request.Status,
) (OverrideRequestStatusCommand, error) {
	if err := errors.Join(
		requestID.Validate(),
		target.Validate(),
	); err != nil {
		return OverrideRequestStatusCommand{}, err
	}

	return OverrideRequestStatusCommand{
		requestID: requestID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideRequestStatusCommand) Validate() error {
	return c.guard.Validate(ErrOverrideRequestStatusCommandIsNotConstructed)
}

// RequestID returns the target request ID.
func (c OverrideRequestStatusCommand) RequestID() kernel.UUID {
	return c.requestID
}

// Target returns the forced status.
func (c OverrideRequestStatusCommand) Target() request.Status {
	return c.target
}
