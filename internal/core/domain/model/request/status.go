package request

import (
	"errors"
	"fmt"

	"fixxo/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a status change is not present in the
// transition allow-list. Callers match it with errors.Is to map the failure
// to a conflict rather than a generic error.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of a service request.
// It implements a state machine with an explicit transition allow-list so
// requests follow the correct business workflow.
//
// State transitions:
//
//	New ──> Assigned ──> EnRoute ──> Arrived ──> InProgress ──> Completed
//	 │         │            │           │             │
//	 └─────────┴────────────┴───────────┴─────────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no transition leaves them. Advancing
// to the current status is permitted and is a no-op, which makes retried
// calls idempotent.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status of a request created by customer intake.
	// Requests in this status are waiting for an administrator to assign a rider.
	New

	// Assigned indicates an administrator has assigned the request to a rider.
	Assigned

	// EnRoute indicates the rider has departed for the service location.
	EnRoute

	// Arrived indicates the rider has reached the service location.
	Arrived

	// InProgress indicates the service is being performed.
	InProgress

	// Completed indicates the service finished successfully. Terminal.
	Completed

	// Cancelled indicates the request was called off. Terminal, reachable
	// from any non-terminal status.
	Cancelled
)

// getStatusStrings returns the persisted text form of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		New:        "new",
		Assigned:   "assigned",
		EnRoute:    "en_route",
		Arrived:    "arrived",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation
// and parsing of externally supplied status text.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "new",
		Assigned:   "assigned",
		EnRoute:    "en_route",
		Arrived:    "arrived",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getAllowedTransitions is the transition allow-list. A target is legal from
// a given status only if it appears in that status's slice. Terminal statuses
// map to empty slices.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		New:        {Assigned, Cancelled},
		Assigned:   {EnRoute, Cancelled},
		EnRoute:    {Arrived, Cancelled},
		Arrived:    {InProgress, Cancelled},
		InProgress: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the persisted text form of a status.
// Returns an error for text that does not name a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Unknown (0) and out-of-range values are invalid. Used to vet
// Status values arriving from persistence or API callers before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted text form of the status ("en_route",
// "completed", ...). Safe to call on any value; invalid values yield
// "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the request lifecycle.
// A rider holding only terminal requests is free.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether target is reachable from s under the
// allow-list. Re-applying the current status is always permitted so that
// repeated advance calls stay idempotent.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Advance transitions the status to target.
//
// Returns the new status on a legal transition. Returns ErrIllegalTransition
// when the (current, target) pair is not in the allow-list, which covers
// every transition out of a terminal status. Advancing to the current status
// succeeds and returns it unchanged.
func (s Status) Advance(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}
	return target, nil
}

// Next returns the forward-progress suggestion for the current status: the
// single "next step" a rider is offered. The second return value is false
// for statuses with no forward step (New before assignment and the terminal
// statuses).
func (s Status) Next() (Status, bool) {
	switch s {
	case Assigned:
		return EnRoute, true
	case EnRoute:
		return Arrived, true
	case Arrived:
		return InProgress, true
	case InProgress:
		return Completed, true
	default:
		return Unknown, false
	}
}
