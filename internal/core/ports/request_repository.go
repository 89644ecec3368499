package ports

import (
	"context"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
)

// AssignmentState filters request listings by assignment.
type AssignmentState int

const (
	// AssignmentAny places no constraint on assignment.
	AssignmentAny AssignmentState = iota
	// AssignmentAssigned keeps only requests with an assigned rider.
	AssignmentAssigned
	// AssignmentUnassigned keeps only requests without a rider.
	AssignmentUnassigned
)

// RequestFilter narrows request listings. Zero values mean "no filter".
type RequestFilter struct {
	// Service restricts results to one service category.
	Service kernel.ServiceKind
	// Assignment restricts results by assignment state.
	Assignment AssignmentState
	// RiderID restricts results to one rider's requests.
	RiderID *kernel.UUID
	// Search matches a substring of user id, phone, or area.
	Search string
}

// RequestRepository defines the persistence contract for service request
// aggregates.
type RequestRepository interface {
	// Add persists a new request aggregate to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// GetAll retrieves requests matching the filter, newest first.
	GetAll(ctx context.Context, filter RequestFilter) ([]*request.Request, error)

	// GetAllByRider retrieves every request assigned to the rider,
	// active requests first.
	GetAllByRider(ctx context.Context, riderID kernel.UUID) ([]*request.Request, error)

	// CompleteAllActive marks every non-terminal request assigned to the
	// rider as completed in one statement. Cancelled requests are left
	// untouched. Returns the number of rows changed.
	CompleteAllActive(ctx context.Context, riderID kernel.UUID) (int64, error)

	// CountActiveByRider reports how many active (assigned, non-terminal)
	// requests the rider currently holds.
	CountActiveByRider(ctx context.Context, riderID kernel.UUID) (int64, error)
}
