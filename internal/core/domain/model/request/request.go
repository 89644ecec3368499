package request

import (
	"errors"
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through one of the constructor functions.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest")

	// ErrRequestIsNotAssigned is returned when an operation that needs an
	// owning rider runs against an unassigned request.
	ErrRequestIsNotAssigned = errors.New("request is not assigned to a rider")

	// ErrRequestNotOwned is returned when a rider acts on a request that is
	// assigned to somebody else.
	ErrRequestNotOwned = errors.New("request is assigned to a different rider")
)

// Request is the aggregate root for a single customer service job. It owns
// the lifecycle status and the weak reference to the assigned rider.
//
// Request maintains these invariants:
//   - status changes follow the Status allow-list (see Status.Advance)
//   - a request only enters Assigned through AssignTo, which records the rider
//   - updatedAt moves forward on every mutation
//   - instances must be created via NewRequest or RestoreRequest
//
// The assigned rider is a lookup-only reference: a Request never enumerates
// or owns the Rider aggregate, and the two are persisted independently.
type Request struct {
	// id is the unique identifier for the request
	id kernel.UUID

	// userID is the opaque identifier of the requesting customer,
	// supplied by the out-of-scope intake layer
	userID string

	// userPhone is the customer's contact number for notifications
	userPhone string

	// service is the requested service category
	service kernel.ServiceKind

	// details is the structured where/when payload
	details Details

	// status is the current lifecycle state
	status Status

	// assignedRiderID is the weak reference to the owning rider (nil if unassigned)
	assignedRiderID *kernel.UUID

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewRequest creates a Request in status New, the state customer intake
// leaves it in. The requesting user identifier and phone are required; the
// service category must be valid.
func NewRequest(
	id kernel.UUID,
	userID string,
	userPhone string,
	service kernel.ServiceKind,
	details Details,
) (*Request, error) {
	now := time.Now().UTC()
	req := &Request{
		status:        New,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		req.setID(id),
		req.setUser(userID, userPhone),
		req.setService(service),
	); err != nil {
		return nil, err
	}

	req.details = details
	return req, nil
}

// RestoreRequest reconstructs a Request aggregate from persistent storage,
// preserving its status, assignment, and timestamps. The restored request
// behaves identically to one built up through domain operations.
func RestoreRequest(
	id kernel.UUID,
	userID string,
	userPhone string,
	service kernel.ServiceKind,
	details Details,
	status Status,
	assignedRiderID *kernel.UUID,
	createdAt time.Time,
	updatedAt time.Time,
) (*Request, error) {
	req := &Request{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		req.setID(id),
		req.setUser(userID, userPhone),
		req.setService(service),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if assignedRiderID != nil {
		if err := assignedRiderID.Validate(); err != nil {
			return nil, err
		}
		riderID := *assignedRiderID
		req.assignedRiderID = &riderID
	}

	req.details = details
	req.status = status
	return req, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// IsEqual compares two requests by their unique identifiers.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// UserID returns the opaque identifier of the requesting customer.
func (r *Request) UserID() string {
	return r.userID
}

// UserPhone returns the customer's contact number.
func (r *Request) UserPhone() string {
	return r.userPhone
}

// Service returns the requested service category.
func (r *Request) Service() kernel.ServiceKind {
	return r.service
}

// Details returns the structured where/when payload.
func (r *Request) Details() Details {
	return r.details
}

// Status returns the current lifecycle status.
func (r *Request) Status() Status {
	return r.status
}

// AssignedRider returns the owning rider's ID, or nil if unassigned.
func (r *Request) AssignedRider() *kernel.UUID {
	return r.assignedRiderID
}

// CreatedAt returns the creation timestamp.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (r *Request) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsActive reports whether the request keeps its rider busy: it is assigned
// and its status is non-terminal. Unassigned requests have no bearing on any
// rider's availability.
func (r *Request) IsActive() bool {
	return r.assignedRiderID != nil && !r.status.IsTerminal()
}

// IsOwnedBy reports whether the request is assigned to the given rider.
func (r *Request) IsOwnedBy(riderID kernel.UUID) bool {
	return r.assignedRiderID != nil && r.assignedRiderID.IsEqual(riderID)
}

// AssignTo assigns the request to a rider and moves the status to Assigned.
//
// Assignment is a manual administrative action. It is legal from New and,
// as reassignment, from Assigned while the rider has not yet departed; any
// later status rejects it with ErrIllegalTransition.
func (r *Request) AssignTo(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Advance(Assigned)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedRiderID = &riderID
	r.touch()
	return nil
}

// AdvanceTo moves the request to the target status along the allow-list.
// Advancing to the current status is an idempotent no-op that still
// refreshes updatedAt. Targets other than Cancelled require the request to
// be assigned.
func (r *Request) AdvanceTo(target Status) error {
	if target != Cancelled && target != New && r.assignedRiderID == nil {
		return ErrRequestIsNotAssigned
	}

	newStatus, err := r.status.Advance(target)
	if err != nil {
		return err
	}

	r.status = newStatus
	r.touch()
	return nil
}

// OverrideStatus forces any valid status onto the request, bypassing the
// allow-list. This is the privileged administrative repair path; the regular
// rider flow must use AdvanceTo.
func (r *Request) OverrideStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target != New && target != Cancelled && r.assignedRiderID == nil {
		return ErrRequestIsNotAssigned
	}

	r.status = target
	r.touch()
	return nil
}

func (r *Request) touch() {
	r.updatedAt = time.Now().UTC()
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setUser(userID, userPhone string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	if userPhone == "" {
		return errs.NewValueIsRequiredError("userPhone")
	}
	r.userID = userID
	r.userPhone = userPhone
	return nil
}

func (r *Request) setService(service kernel.ServiceKind) error {
	if err := service.Validate(); err != nil {
		return err
	}
	r.service = service
	return nil
}
