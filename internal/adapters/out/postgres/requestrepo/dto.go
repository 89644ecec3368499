// Package requestrepo provides data transfer objects and mapping functions
// for service request persistence.
package requestrepo

import (
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting request
// aggregates. Status and service are stored as their text forms.
type RequestDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          string     `gorm:"type:varchar(255);not null;index"`
	UserPhone       string     `gorm:"type:varchar(32);not null"`
	Service         string     `gorm:"type:varchar(32);not null;index"`
	Area            string     `gorm:"type:text"`
	Latitude        *float64   `gorm:"type:double precision"`
	Longitude       *float64   `gorm:"type:double precision"`
	RequestedAt     *time.Time `gorm:""`
	Duration        string     `gorm:"type:varchar(64)"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	AssignedRiderID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts a request domain aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	details := aggregate.Details()

	var latitude, longitude *float64
	if point := details.Point(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		latitude, longitude = &lat, &lon
	}

	var assignedRiderID *uuid.UUID
	if riderID := aggregate.AssignedRider(); riderID != nil {
		raw := riderID.Bytes()
		assignedRiderID = &raw
	}

	return RequestDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID(),
		UserPhone:       aggregate.UserPhone(),
		Service:         aggregate.Service().String(),
		Area:            details.Area(),
		Latitude:        latitude,
		Longitude:       longitude,
		RequestedAt:     details.RequestedAt(),
		Duration:        details.Duration(),
		Status:          aggregate.Status().String(),
		AssignedRiderID: assignedRiderID,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a request domain aggregate.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	service, err := kernel.ServiceKindFromString(dto.Service)
	if err != nil {
		return nil, err
	}

	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		geoPoint, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &geoPoint
	}

	details, err := request.NewDetails(dto.Area, point, dto.RequestedAt, dto.Duration)
	if err != nil {
		return nil, err
	}

	var assignedRiderID *kernel.UUID
	if dto.AssignedRiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.AssignedRiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		assignedRiderID = &riderID
	}

	return request.RestoreRequest(
		id, dto.UserID, dto.UserPhone, service, details,
		status, assignedRiderID, dto.CreatedAt, dto.UpdatedAt)
}
