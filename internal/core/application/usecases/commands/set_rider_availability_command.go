package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand represents a manual administrative toggle of
// a rider's availability flag. The transition engine overwrites this flag
// as requests move, so a manual toggle may be corrected later by the
// availability reconciliation job.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID   kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates a command to toggle availability.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID, available bool) (SetRiderAvailabilityCommand, error) {
	if err := riderID.Validate(); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return SetRiderAvailabilityCommand{
		riderID:   riderID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the target rider ID.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Available returns the desired availability value.
func (c SetRiderAvailabilityCommand) Available() bool {
	return c.available
}
