package queries

import (
	"errors"
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrListRequestsQueryIsNotConstructed = errors.New(
	"ListRequestsQuery must be created via NewListRequestsQuery constructor",
)

// RequestAssignmentFilter narrows request listings by assignment state.
type RequestAssignmentFilter int

const (
	// FilterAssignmentAny places no constraint on assignment.
	FilterAssignmentAny RequestAssignmentFilter = iota
	// FilterAssignmentAssigned keeps only requests with a rider.
	FilterAssignmentAssigned
	// FilterAssignmentUnassigned keeps only requests without a rider.
	FilterAssignmentUnassigned
)

// ListRequestsQuery retrieves service requests for the admin console with a
// joined rider summary, newest first.
type ListRequestsQuery struct {
	service    kernel.ServiceKind
	assignment RequestAssignmentFilter
	riderID    *kernel.UUID
	search     string

	guard guard.ConstructorGuard
}

// NewListRequestsQuery creates a query to list requests.
// Pass kernel.ServiceUnknown, FilterAssignmentAny, nil, and "" to list
// everything.
func NewListRequestsQuery(
	service kernel.ServiceKind,
	assignment RequestAssignmentFilter,
	riderID *kernel.UUID,
	search string,
) (ListRequestsQuery, error) {
	if service != kernel.ServiceUnknown {
		if err := service.Validate(); err != nil {
			return ListRequestsQuery{}, err
		}
	}
	if riderID != nil {
		if err := riderID.Validate(); err != nil {
			return ListRequestsQuery{}, err
		}
	}

	return ListRequestsQuery{
		service:    service,
		assignment: assignment,
		riderID:    riderID,
		search:     search,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListRequestsQueryIsNotConstructed)
}

// Service returns the service filter, ServiceUnknown when unset.
func (q ListRequestsQuery) Service() kernel.ServiceKind {
	return q.service
}

// Assignment returns the assignment state filter.
func (q ListRequestsQuery) Assignment() RequestAssignmentFilter {
	return q.assignment
}

// RiderID returns the rider filter, nil when unset.
func (q ListRequestsQuery) RiderID() *kernel.UUID {
	return q.riderID
}

// Search returns the free-text filter, empty when unset.
func (q ListRequestsQuery) Search() string {
	return q.search
}

// RequestRiderSummary carries the assigned rider's display fields joined
// into a request row. Nil when the request is unassigned.
type RequestRiderSummary struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// ListRequestsQueryResponse represents one request row in the read model.
type ListRequestsQueryResponse struct {
	ID          kernel.UUID
	UserID      string
	UserPhone   string
	Service     string
	Area        string
	Status      string
	RequestedAt *time.Time
	Duration    string
	Rider       *RequestRiderSummary
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
