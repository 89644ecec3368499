package commands

import (
	"errors"
	"time"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/request"
	"fixxo/internal/pkg/errs"
	"fixxo/internal/pkg/guard"
)

var ErrCreateRequestCommandIsNotConstructed = errors.New(
	"CreateRequestCommand must be created via NewCreateRequestCommand constructor",
)

// CreateRequestCommand represents customer intake of a new service request.
// Requests always start in the new status, unassigned.
type CreateRequestCommand struct { //nolint:recvcheck //using for validation
	requestID   kernel.UUID
	userID      string
	userPhone   string
	service     kernel.ServiceKind
	area        string
	point       *kernel.GeoPoint
	requestedAt *time.Time
	duration    string

	guard guard.ConstructorGuard
}

// NewCreateRequestCommand creates a command for customer intake.
// Automatically generates a unique request ID.
func NewCreateRequestCommand(
	userID string,
	userPhone string,
	service kernel.ServiceKind,
	area string,
	point *kernel.GeoPoint,
	requestedAt *time.Time,
	duration string,
) (CreateRequestCommand, error) {
	command := CreateRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRequestID(kernel.NewUUID()),
		command.setUser(userID, userPhone),
		command.setService(service),
		command.setPoint(point),
	); err != nil {
		return CreateRequestCommand{}, err
	}
	command.area = area
	command.requestedAt = requestedAt
	command.duration = duration

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateRequestCommandIsNotConstructed)
}

// RequestID returns the generated request ID.
func (c CreateRequestCommand) RequestID() kernel.UUID {
	return c.requestID
}

// UserID returns the customer identifier from the command.
func (c CreateRequestCommand) UserID() string {
	return c.userID
}

// UserPhone returns the customer phone from the command.
func (c CreateRequestCommand) UserPhone() string {
	return c.userPhone
}

// Service returns the requested service category.
func (c CreateRequestCommand) Service() kernel.ServiceKind {
	return c.service
}

// Details builds the request details value from the command fields.
func (c CreateRequestCommand) Details() (request.Details, error) {
	return request.NewDetails(c.area, c.point, c.requestedAt, c.duration)
}

func (c *CreateRequestCommand) setRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.requestID = id
	return nil
}

func (c *CreateRequestCommand) setUser(userID, userPhone string) error {
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	if userPhone == "" {
		return errs.NewValueIsRequiredError("userPhone")
	}

	c.userID = userID
	c.userPhone = userPhone
	return nil
}

func (c *CreateRequestCommand) setService(service kernel.ServiceKind) error {
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}

func (c *CreateRequestCommand) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}
