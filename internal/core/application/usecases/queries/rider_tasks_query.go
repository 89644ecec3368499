package queries

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrRiderTasksQueryIsNotConstructed = errors.New(
	"RiderTasksQuery must be created via NewRiderTasksQuery constructor",
)

// RiderTasksQuery retrieves the task list for one rider's portal dashboard:
// every request assigned to them, active requests first.
type RiderTasksQuery struct {
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRiderTasksQuery creates a query for a rider's task list.
func NewRiderTasksQuery(riderID kernel.UUID) (RiderTasksQuery, error) {
	if err := riderID.Validate(); err != nil {
		return RiderTasksQuery{}, err
	}

	return RiderTasksQuery{
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RiderTasksQuery) Validate() error {
	return q.guard.Validate(ErrRiderTasksQueryIsNotConstructed)
}

// RiderID returns the rider whose tasks are requested.
func (q RiderTasksQuery) RiderID() kernel.UUID {
	return q.riderID
}
