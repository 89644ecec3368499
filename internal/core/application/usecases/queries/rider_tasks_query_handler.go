package queries

import (
	"context"

	"fixxo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiderTasksQueryHandler retrieves one rider's assigned requests.
// The rider summary join is unnecessary here: the caller is the rider.
type RiderTasksQueryHandler struct {
	db *gorm.DB
}

// NewRiderTasksQueryHandler creates a handler for rider task queries.
func NewRiderTasksQueryHandler(db *gorm.DB) RiderTasksQueryHandler {
	return RiderTasksQueryHandler{db: db}
}

// Handle executes the query. Active requests come first, then terminal
// ones, newest first within each group.
func (h RiderTasksQueryHandler) Handle(
	ctx context.Context,
	query RiderTasksQuery,
) ([]ListRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			user_phone,
			service,
			area,
			status,
			requested_at,
			duration,
			created_at,
			updated_at
		FROM requests
		WHERE assigned_rider_id = ?
		ORDER BY status IN ('completed', 'cancelled') ASC, created_at DESC
	`, query.RiderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]ListRequestsQueryResponse, 0)
	for rows.Next() {
		var row ListRequestsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.UserID,
			&row.UserPhone,
			&row.Service,
			&row.Area,
			&row.Status,
			&row.RequestedAt,
			&row.Duration,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		requestID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = requestID
		tasks = append(tasks, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
