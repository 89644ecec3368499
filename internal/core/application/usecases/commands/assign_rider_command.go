package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand represents an administrator assigning a request to a
// rider. Assignment is a manual choice; there is no auto-dispatch.
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	riderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command to assign a request to a rider.
func NewAssignRiderCommand(requestID, riderID kernel.UUID) (AssignRiderCommand, error) {
	if err := errors.Join(
		requestID.Validate(),
		riderID.Validate(),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		requestID: requestID,
		riderID:   riderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// RequestID returns the target request ID.
func (c AssignRiderCommand) RequestID() kernel.UUID {
	return c.requestID
}

// RiderID returns the chosen rider ID.
func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
