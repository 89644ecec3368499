package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/pkg/errs"
	"fixxo/internal/pkg/guard"
)

var ErrUpdateRiderCommandIsNotConstructed = errors.New(
	"UpdateRiderCommand must be created via NewUpdateRiderCommand constructor",
)

// UpdateRiderCommand represents a request to edit a rider's profile.
// Credentials and availability are not touched by this command.
type UpdateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID  kernel.UUID
	name     string
	phone    string
	service  kernel.ServiceKind
	address  string
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateRiderCommand creates a command to edit a rider's profile.
func NewUpdateRiderCommand(
	riderID kernel.UUID,
	name string,
	phone string,
	service kernel.ServiceKind,
	address string,
	location *kernel.GeoPoint,
) (UpdateRiderCommand, error) {
	command := UpdateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setProfile(name, phone, service, location),
	); err != nil {
		return UpdateRiderCommand{}, err
	}
	command.address = address

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRiderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRiderCommandIsNotConstructed)
}

// RiderID returns the target rider ID.
func (c UpdateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the new rider name.
func (c UpdateRiderCommand) Name() string {
	return c.name
}

// Phone returns the new rider phone.
func (c UpdateRiderCommand) Phone() string {
	return c.phone
}

// Service returns the new service category.
func (c UpdateRiderCommand) Service() kernel.ServiceKind {
	return c.service
}

// Address returns the new address.
func (c UpdateRiderCommand) Address() string {
	return c.address
}

// Location returns the new optional base coordinate.
func (c UpdateRiderCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *UpdateRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.riderID = id
	return nil
}

func (c *UpdateRiderCommand) setProfile(
	name string, phone string, service kernel.ServiceKind, location *kernel.GeoPoint,
) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if err := service.Validate(); err != nil {
		return err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	c.name = name
	c.phone = phone
	c.service = service
	c.location = location
	return nil
}
