// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/guard"
)

var ErrListRidersQueryIsNotConstructed = errors.New(
	"ListRidersQuery must be created via NewListRidersQuery constructor",
)

// ListRidersQuery retrieves the rider fleet for the admin console, newest
// first. Optional filters narrow by service category, availability, and a
// free-text search over name, phone, and service.
type ListRidersQuery struct {
	service       kernel.ServiceKind
	availableOnly bool
	search        string

	guard guard.ConstructorGuard
}

// NewListRidersQuery creates a query to list riders.
// Pass kernel.ServiceUnknown, false, and "" to list everything.
func NewListRidersQuery(service kernel.ServiceKind, availableOnly bool, search string) (ListRidersQuery, error) {
	if service != kernel.ServiceUnknown {
		if err := service.Validate(); err != nil {
			return ListRidersQuery{}, err
		}
	}

	return ListRidersQuery{
		service:       service,
		availableOnly: availableOnly,
		search:        search,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRidersQuery) Validate() error {
	return q.guard.Validate(ErrListRidersQueryIsNotConstructed)
}

// Service returns the service filter, ServiceUnknown when unset.
func (q ListRidersQuery) Service() kernel.ServiceKind {
	return q.service
}

// AvailableOnly reports whether only available riders are wanted.
func (q ListRidersQuery) AvailableOnly() bool {
	return q.availableOnly
}

// Search returns the free-text filter, empty when unset.
func (q ListRidersQuery) Search() string {
	return q.search
}

// ListRidersQueryResponse represents one rider row in the read model.
type ListRidersQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Phone       string
	Service     string
	IsAvailable bool
	Address     string
	Rating      float64
	Username    string
	CreatedAt   time.Time
}
