package services

import (
	"fmt"
	"strings"

	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/core/domain/model/rider"
)

// trackingRefLength is the number of leading request-id characters used as
// the customer-facing tracking reference.
const trackingRefLength = 8

// Notification is a composed customer message together with its routing
// hint. Delivery is outside this service's contract: callers relay the text
// to the customer's phone number through whatever channel they have.
type Notification struct {
	// Text is the customer-facing message body.
	Text string
	// CustomerPhone is the routing/display hint for delivery.
	CustomerPhone string
}

// NotificationComposer is a domain service producing customer notifications
// for service request status transitions.
//
// Business rules:
//   - only transitions into en_route, in_progress, and completed notify;
//     all other targets produce no message
//   - every message carries a tracking reference derived from the first
//     eight characters of the request id
//   - composition is pure: no delivery, no persistence
type NotificationComposer struct{}

// NewNotificationComposer creates a new NotificationComposer instance.
func NewNotificationComposer() NotificationComposer {
	return NotificationComposer{}
}

// Compose builds the customer notification for a transition into target.
// Returns nil when the target status does not notify. The rider may be nil
// only for non-notifying targets; notifying targets require an assigned
// rider for contact details.
func (c NotificationComposer) Compose(
	target request.Status, req *request.Request, assignee *rider.Rider,
) (*Notification, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch target {
	case request.EnRoute, request.InProgress, request.Completed:
	default:
		return nil, nil
	}

	if assignee == nil {
		return nil, request.ErrRequestIsNotAssigned
	}
	if err := assignee.Validate(); err != nil {
		return nil, err
	}

	ref := trackingRef(req.ID().String())
	service := strings.ReplaceAll(req.Service().String(), "_", " ")

	var text string
	switch target {
	case request.EnRoute:
		text = fmt.Sprintf(
			"Your %s professional %s is en route to %s. Track your booking with reference %s. Contact: %s.",
			service, assignee.Name(), req.Details().Area(), ref, assignee.Phone())
	case request.InProgress:
		text = fmt.Sprintf(
			"Your %s service (reference %s) has started. %s is on the job.",
			service, ref, assignee.Name())
	case request.Completed:
		text = fmt.Sprintf(
			"Your %s service is complete. Please settle payment for booking %s. Thank you for choosing us!",
			service, ref)
	}

	return &Notification{
		Text:          text,
		CustomerPhone: req.UserPhone(),
	}, nil
}

func trackingRef(id string) string {
	if len(id) <= trackingRefLength {
		return id
	}
	return id[:trackingRefLength]
}
