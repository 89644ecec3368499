// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence. This package implements the repository pattern for the
// rider domain aggregate, handling the conversion between domain entities and
// database representations.
package riderrepo

import (
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Phone       string    `gorm:"type:varchar(32);not null"`
	Service     string    `gorm:"type:varchar(32);not null;index"`
	IsAvailable bool      `gorm:"not null;index"`
	Address     string    `gorm:"type:text"`
	Latitude    *float64  `gorm:"type:double precision"`
	Longitude   *float64  `gorm:"type:double precision"`
	Rating      float64   `gorm:"type:double precision;not null"`
	Username    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	TokenHash   string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for rider entities.
// Overrides GORM's default naming convention to use "riders" instead of "rider_dtos".
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	var latitude, longitude *float64
	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lon
	}

	return RiderDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Phone:       aggregate.Phone(),
		Service:     aggregate.Service().String(),
		IsAvailable: aggregate.IsAvailable(),
		Address:     aggregate.Address(),
		Latitude:    latitude,
		Longitude:   longitude,
		Rating:      aggregate.Rating(),
		Username:    aggregate.Credentials().Username(),
		TokenHash:   aggregate.Credentials().TokenHash(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a rider domain aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	service, err := kernel.ServiceKindFromString(dto.Service)
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	credentials, err := rider.RestoreCredentials(dto.Username, dto.TokenHash)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id, dto.Name, dto.Phone, service, dto.IsAvailable,
		dto.Address, location, dto.Rating, credentials, dto.CreatedAt)
}
