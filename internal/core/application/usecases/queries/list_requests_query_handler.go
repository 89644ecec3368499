package queries

import (
	"context"
	"database/sql"

	"fixxo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRequestsQueryHandler retrieves request rows with their assigned
// rider's summary in one round trip.
type ListRequestsQueryHandler struct {
	db *gorm.DB
}

// NewListRequestsQueryHandler creates a handler for request listing queries.
func NewListRequestsQueryHandler(db *gorm.DB) ListRequestsQueryHandler {
	return ListRequestsQueryHandler{db: db}
}

// Handle executes the query and returns request rows, newest first.
// Unassigned requests carry a nil rider summary.
func (h ListRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListRequestsQuery,
) ([]ListRequestsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	querySQL := `
		SELECT
			req.id,
			req.user_id,
			req.user_phone,
			req.service,
			req.area,
			req.status,
			req.requested_at,
			req.duration,
			req.assigned_rider_id,
			r.name,
			r.phone,
			req.created_at,
			req.updated_at
		FROM requests req
		LEFT JOIN riders r ON r.id = req.assigned_rider_id
		WHERE 1=1
	`
	args := make([]any, 0, 5)

	if query.Service() != kernel.ServiceUnknown {
		querySQL += " AND req.service = ?"
		args = append(args, query.Service().String())
	}
	switch query.Assignment() {
	case FilterAssignmentAssigned:
		querySQL += " AND req.assigned_rider_id IS NOT NULL"
	case FilterAssignmentUnassigned:
		querySQL += " AND req.assigned_rider_id IS NULL"
	case FilterAssignmentAny:
	}
	if query.RiderID() != nil {
		querySQL += " AND req.assigned_rider_id = ?"
		args = append(args, query.RiderID().Bytes())
	}
	if query.Search() != "" {
		querySQL += " AND (req.user_id ILIKE ? OR req.user_phone ILIKE ? OR req.area ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern, pattern)
	}
	querySQL += " ORDER BY req.created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(querySQL, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]ListRequestsQueryResponse, 0)
	for rows.Next() {
		row, scanErr := scanRequestRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		requests = append(requests, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// scanRequestRow maps one joined result row to the read model.
func scanRequestRow(rows *sql.Rows) (ListRequestsQueryResponse, error) {
	var row ListRequestsQueryResponse
	var id uuid.UUID
	var riderID *uuid.UUID
	var riderName, riderPhone *string

	err := rows.Scan(
		&id,
		&row.UserID,
		&row.UserPhone,
		&row.Service,
		&row.Area,
		&row.Status,
		&row.RequestedAt,
		&row.Duration,
		&riderID,
		&riderName,
		&riderPhone,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return ListRequestsQueryResponse{}, err
	}

	requestID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ListRequestsQueryResponse{}, err
	}
	row.ID = requestID

	if riderID != nil && riderName != nil && riderPhone != nil {
		summaryID, idErr := kernel.UUIDFromBytes((*riderID)[:])
		if idErr != nil {
			return ListRequestsQueryResponse{}, idErr
		}
		row.Rider = &RequestRiderSummary{
			ID:    summaryID,
			Name:  *riderName,
			Phone: *riderPhone,
		}
	}

	return row, nil
}
