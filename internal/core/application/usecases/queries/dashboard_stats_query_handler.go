package queries

import (
	"context"

	"gorm.io/gorm"
)

// DashboardStatsQueryHandler computes the admin dashboard counters in one
// round trip.
type DashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewDashboardStatsQueryHandler(db *gorm.DB) DashboardStatsQueryHandler {
	return DashboardStatsQueryHandler{db: db}
}

// Handle executes the query. Pending counts requests still in the new
// status, waiting for assignment.
func (h DashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query DashboardStatsQuery,
) (DashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsQueryResponse{}, err
	}

	var response DashboardStatsQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM requests)                          AS total_requests,
			(SELECT COUNT(*) FROM requests WHERE status = 'new')     AS pending_requests,
			(SELECT COUNT(*) FROM requests WHERE status = 'completed') AS completed_requests,
			(SELECT COUNT(*) FROM riders WHERE is_available = TRUE)  AS available_riders
	`).Row()

	if err := row.Scan(
		&response.TotalRequests,
		&response.PendingRequests,
		&response.CompletedRequests,
		&response.AvailableRiders,
	); err != nil {
		return DashboardStatsQueryResponse{}, err
	}

	return response, nil
}
