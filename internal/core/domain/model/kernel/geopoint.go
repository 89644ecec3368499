package kernel

import (
	"fmt"

	"fixxo/internal/pkg/errs"
	"fixxo/internal/pkg/guard"
)

const (
	// GeoPointMinLatitude is the southernmost valid latitude in degrees.
	GeoPointMinLatitude = -90.0
	// GeoPointMaxLatitude is the northernmost valid latitude in degrees.
	GeoPointMaxLatitude = 90.0
	// GeoPointMinLongitude is the westernmost valid longitude in degrees.
	GeoPointMinLongitude = -180.0
	// GeoPointMaxLongitude is the easternmost valid longitude in degrees.
	GeoPointMaxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized
// GeoPoint. GeoPoints must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a validated WGS84 coordinate
// pair. It marks where a rider is based and where a service request takes
// place. The zero value is invalid; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(19.1197, 72.9051)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint after validating that latitude is within
// [-90, 90] and longitude within [-180, 180] degrees.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < GeoPointMinLatitude || latitude > GeoPointMaxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError(
			"latitude", latitude, GeoPointMinLatitude, GeoPointMaxLatitude)
	}
	if longitude < GeoPointMinLongitude || longitude > GeoPointMaxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError(
			"longitude", longitude, GeoPointMinLongitude, GeoPointMaxLongitude)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points hold the same coordinate pair.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String implements fmt.Stringer for logging and display.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// Validate ensures the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}
