package requestrepo

import (
	"context"
	"errors"
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/core/ports"
	"fixxo/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new request to the database.
func (r *GormRequestRepository) Add(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing request to the database.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a request by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves requests matching the filter, newest first.
func (r *GormRequestRepository) GetAll(ctx context.Context, filter ports.RequestFilter) ([]*request.Request, error) {
	query := r.db.WithContext(ctx).Model(&RequestDTO{}).Order("created_at DESC")

	if filter.Service != kernel.ServiceUnknown {
		query = query.Where("service = ?", filter.Service.String())
	}
	switch filter.Assignment {
	case ports.AssignmentAssigned:
		query = query.Where("assigned_rider_id IS NOT NULL")
	case ports.AssignmentUnassigned:
		query = query.Where("assigned_rider_id IS NULL")
	case ports.AssignmentAny:
	}
	if filter.RiderID != nil {
		query = query.Where("assigned_rider_id = ?", filter.RiderID.Bytes())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"user_id ILIKE ? OR user_phone ILIKE ? OR area ILIKE ?",
			pattern, pattern, pattern)
	}

	var dtos []RequestDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllByRider retrieves every request assigned to the rider. Active
// requests come first, then terminal ones, newest first within each group.
func (r *GormRequestRepository) GetAllByRider(ctx context.Context, riderID kernel.UUID) ([]*request.Request, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	if err := r.db.WithContext(ctx).
		Where("assigned_rider_id = ?", riderID.Bytes()).
		Order("status IN ('completed', 'cancelled') ASC, created_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CompleteAllActive marks every non-terminal request assigned to the rider
// as completed in one statement. Cancelled rows stay cancelled.
func (r *GormRequestRepository) CompleteAllActive(ctx context.Context, riderID kernel.UUID) (int64, error) {
	if err := riderID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("assigned_rider_id = ?", riderID.Bytes()).
		Where("status NOT IN ('completed', 'cancelled')").
		Updates(map[string]any{
			"status":     request.Completed.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// CountActiveByRider reports how many active requests the rider holds.
func (r *GormRequestRepository) CountActiveByRider(ctx context.Context, riderID kernel.UUID) (int64, error) {
	if err := riderID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("assigned_rider_id = ?", riderID.Bytes()).
		Where("status NOT IN ('completed', 'cancelled')").
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func toDomainSlice(dtos []RequestDTO) ([]*request.Request, error) {
	requests := make([]*request.Request, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, aggregate)
	}
	return requests, nil
}
