package commands

import (
	"errors"

	"fixxo/internal/pkg/guard"
)

var ErrReconcileAvailabilityCommandIsNotConstructed = errors.New(
	"ReconcileAvailabilityCommand must be created via NewReconcileAvailabilityCommand constructor",
)

// ReconcileAvailabilityCommand triggers a sweep that realigns every
// rider's availability flag with their active requests. Manual admin
// toggles can leave the flag out of step; this command repairs the drift.
type ReconcileAvailabilityCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileAvailabilityCommand creates a new reconciliation trigger.
// This is a parameterless command; the sweep covers the whole fleet.
func NewReconcileAvailabilityCommand() ReconcileAvailabilityCommand {
	return ReconcileAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAvailabilityCommandIsNotConstructed)
}
