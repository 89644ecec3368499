package rider

import (
	"errors"
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/errs"
	"fixxo/internal/pkg/guard"
)

const (
	// RatingMin is the lowest rating a rider can carry.
	RatingMin = 0.0
	// RatingMax is the highest rating a rider can carry.
	RatingMax = 5.0
	// RatingDefault is assigned to newly created riders.
	RatingDefault = 5.0
)

// Domain errors for rider operations.
var (
	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a rider without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider")
)

// Rider represents a service provider in the fleet. It is an aggregate root
// managing the rider's identity, service category, portal credentials, and
// the availability flag the transition engine keeps consistent with the
// rider's active requests.
//
// Business rules:
//   - must have a valid UUID, non-empty name and phone, and a valid category
//   - rating stays within [RatingMin, RatingMax]; new riders start at RatingDefault
//   - availability is a derived convenience: the transition engine overwrites
//     it as requests move, and an administrator may toggle it manually
//   - portal credentials are stored hashed, never as plaintext
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID
	// name is the rider's display name
	name string
	// phone is the rider's contact number
	phone string
	// service is the category the rider works
	service kernel.ServiceKind
	// isAvailable is false while the rider holds any active request
	isAvailable bool
	// address is the rider's free-text base address
	address string
	// location is the optional geocoordinate of the rider's base
	location *kernel.GeoPoint
	// rating is the rider's service rating
	rating float64
	// credentials is the rider's portal login pair
	credentials Credentials
	// createdAt is the registration timestamp
	createdAt time.Time
	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NewRider creates a Rider with the given profile and credentials. New
// riders start available with the default rating. The location is optional;
// when present it must be a constructed GeoPoint.
func NewRider(
	id kernel.UUID,
	name string,
	phone string,
	service kernel.ServiceKind,
	address string,
	location *kernel.GeoPoint,
	credentials Credentials,
) (*Rider, error) {
	r := &Rider{
		isAvailable: true,
		rating:      RatingDefault,
		createdAt:   time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(name, phone, service, address, location),
		r.setCredentials(credentials),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider aggregate from persistent storage,
// preserving availability, rating, and registration time.
func RestoreRider(
	id kernel.UUID,
	name string,
	phone string,
	service kernel.ServiceKind,
	isAvailable bool,
	address string,
	location *kernel.GeoPoint,
	rating float64,
	credentials Credentials,
	createdAt time.Time,
) (*Rider, error) {
	r := &Rider{
		isAvailable: isAvailable,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setProfile(name, phone, service, address, location),
		r.setRating(rating),
		r.setCredentials(credentials),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rider was created through a constructor.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Phone returns the rider's contact number.
func (r *Rider) Phone() string {
	return r.phone
}

// Service returns the category the rider works.
func (r *Rider) Service() kernel.ServiceKind {
	return r.service
}

// IsAvailable reports whether the rider is currently free for assignment.
func (r *Rider) IsAvailable() bool {
	return r.isAvailable
}

// Address returns the rider's free-text base address.
func (r *Rider) Address() string {
	return r.address
}

// Location returns the rider's base coordinates, or nil when not set.
func (r *Rider) Location() *kernel.GeoPoint {
	return r.location
}

// Rating returns the rider's current service rating.
func (r *Rider) Rating() float64 {
	return r.rating
}

// Credentials returns the rider's portal login pair.
func (r *Rider) Credentials() Credentials {
	return r.credentials
}

// CreatedAt returns the registration timestamp.
func (r *Rider) CreatedAt() time.Time {
	return r.createdAt
}

// SetAvailability overwrites the availability flag. The transition engine
// calls this as requests move between active and terminal statuses; the
// admin console calls it for manual toggles. The write is unconditional, so
// setting the current value is a no-op in effect.
func (r *Rider) SetAvailability(available bool) {
	r.isAvailable = available
}

// UpdateProfile replaces the rider's editable profile fields, validating
// them the same way construction does.
func (r *Rider) UpdateProfile(
	name string,
	phone string,
	service kernel.ServiceKind,
	address string,
	location *kernel.GeoPoint,
) error {
	return r.setProfile(name, phone, service, address, location)
}

// SetRating replaces the rider's rating, keeping it within bounds.
func (r *Rider) SetRating(rating float64) error {
	return r.setRating(rating)
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setProfile(
	name string,
	phone string,
	service kernel.ServiceKind,
	address string,
	location *kernel.GeoPoint,
) error {
	if name == "" {
		return ErrNameIsRequired
	}
	if phone == "" {
		return ErrPhoneIsRequired
	}
	if err := service.Validate(); err != nil {
		return err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
		point := *location
		r.location = &point
	} else {
		r.location = nil
	}

	r.name = name
	r.phone = phone
	r.service = service
	r.address = address
	return nil
}

func (r *Rider) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	r.rating = rating
	return nil
}

func (r *Rider) setCredentials(credentials Credentials) error {
	if err := credentials.Validate(); err != nil {
		return err
	}
	r.credentials = credentials
	return nil
}
