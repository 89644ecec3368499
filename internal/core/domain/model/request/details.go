package request

import (
	"time"

	"fixxo/internal/core/domain/model/kernel"
)

// Details is the structured payload describing where and when a service
// request takes place. Every field except the guard against a bad coordinate
// pair is optional: intake tolerates sparse submissions and presentation
// layers render fallbacks for missing fields.
type Details struct {
	area        string
	point       *kernel.GeoPoint
	requestedAt *time.Time
	duration    string
}

// NewDetails creates a Details payload. The coordinate pair, when supplied,
// must be a constructed GeoPoint; everything else is taken as-is. A zero
// requestedAt is stored as "no preference" (ASAP).
func NewDetails(area string, point *kernel.GeoPoint, requestedAt *time.Time, duration string) (Details, error) {
	if point != nil {
		if err := point.Validate(); err != nil {
			return Details{}, err
		}
	}
	if requestedAt != nil && requestedAt.IsZero() {
		requestedAt = nil
	}

	return Details{
		area:        area,
		point:       point,
		requestedAt: requestedAt,
		duration:    duration,
	}, nil
}

// Area returns the free-text area description, possibly empty.
func (d Details) Area() string {
	return d.area
}

// Point returns the coordinates of the service location, or nil when the
// customer did not pin one.
func (d Details) Point() *kernel.GeoPoint {
	return d.point
}

// RequestedAt returns the customer's preferred start time, or nil for ASAP.
func (d Details) RequestedAt() *time.Time {
	return d.requestedAt
}

// Duration returns the free-text expected duration ("2 hours"), possibly empty.
func (d Details) Duration() string {
	return d.duration
}
