package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrDeleteRiderCommandIsNotConstructed = errors.New(
	"DeleteRiderCommand must be created via NewDeleteRiderCommand constructor",
)

// DeleteRiderCommand represents a request to remove a rider from the fleet.
// Deletion is refused while the rider holds active requests.
type DeleteRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRiderCommand creates a command to remove a rider.
func NewDeleteRiderCommand(riderID kernel.UUID) (DeleteRiderCommand, error) {
	if err := riderID.Validate(); err != nil {
		return DeleteRiderCommand{}, err
	}

	return DeleteRiderCommand{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRiderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRiderCommandIsNotConstructed)
}

// RiderID returns the target rider ID.
func (c DeleteRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}
