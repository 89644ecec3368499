package queries

import (
	"errors"

	"fixxo/internal/pkg/guard"
)

var ErrDashboardStatsQueryIsNotConstructed = errors.New(
	"DashboardStatsQuery must be created via NewDashboardStatsQuery constructor",
)

// DashboardStatsQuery retrieves the admin dashboard counters.
type DashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewDashboardStatsQuery creates a query for the dashboard counters.
// This is a parameterless query.
func NewDashboardStatsQuery() DashboardStatsQuery {
	return DashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q DashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsQueryResponse carries the admin dashboard counters.
type DashboardStatsQueryResponse struct {
	TotalRequests     int64
	PendingRequests   int64
	CompletedRequests int64
	AvailableRiders   int64
}
