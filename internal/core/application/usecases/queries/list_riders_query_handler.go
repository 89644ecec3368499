package queries

import (
	"context"

	"fixxo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRidersQueryHandler retrieves rider rows from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type ListRidersQueryHandler struct {
	db *gorm.DB
}

// NewListRidersQueryHandler creates a handler for rider listing queries.
func NewListRidersQueryHandler(db *gorm.DB) ListRidersQueryHandler {
	return ListRidersQueryHandler{db: db}
}

// Handle executes the query and returns rider rows, newest first.
func (h ListRidersQueryHandler) Handle(
	ctx context.Context,
	query ListRidersQuery,
) ([]ListRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			phone,
			service,
			is_available,
			address,
			rating,
			username,
			created_at
		FROM riders
		WHERE 1=1
	`
	args := make([]any, 0, 4)

	if query.Service() != kernel.ServiceUnknown {
		sql += " AND service = ?"
		args = append(args, query.Service().String())
	}
	if query.AvailableOnly() {
		sql += " AND is_available = TRUE"
	}
	if query.Search() != "" {
		sql += " AND (name ILIKE ? OR phone ILIKE ? OR service ILIKE ?)"
		pattern := "%" + query.Search() + "%"
		args = append(args, pattern, pattern, pattern)
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	riders := make([]ListRidersQueryResponse, 0)
	for rows.Next() {
		var row ListRidersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Phone,
			&row.Service,
			&row.IsAvailable,
			&row.Address,
			&row.Rating,
			&row.Username,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = riderID
		riders = append(riders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
