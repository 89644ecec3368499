package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrCompleteAllRequestsCommandIsNotConstructed = errors.New(
	"CompleteAllRequestsCommand must be created via NewCompleteAllRequestsCommand constructor",
)

// CompleteAllRequestsCommand represents a rider's end-of-shift bulk clear:
// every active request they hold becomes completed and the rider is freed.
type CompleteAllRequestsCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteAllRequestsCommand creates a command for the bulk clear.
func NewCompleteAllRequestsCommand(riderID kernel.UUID) (CompleteAllRequestsCommand, error) {
	if err := riderID.Validate(); err != nil {
		return CompleteAllRequestsCommand{}, err
	}

	return CompleteAllRequestsCommand{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteAllRequestsCommand) Validate() error {
	return c.guard.Validate(ErrCompleteAllRequestsCommandIsNotConstructed)
}

// RiderID returns the acting rider's ID.
func (c CompleteAllRequestsCommand) RiderID() kernel.UUID {
	return c.riderID
}
