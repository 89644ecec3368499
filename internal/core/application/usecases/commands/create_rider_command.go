package commands

import (
	"errors"

	"fixxo/internal/core/domain/model/kernel"
	"fixxo/internal/core/domain/model/rider"
	"fixxo/internal/pkg/errs"
	"fixxo/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand represents a request to register a new rider in the
// fleet. Portal credentials are generated at construction time; the
// plaintext access token is available once through OneTimeToken and is
// never persisted.
//
// Example:
//
//	cmd, err := NewCreateRiderCommand("Asha Patel", "+91 98200 11111",
//	    kernel.ServiceDogWalker, "Powai, Mumbai", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid rider data: %w", err)
//	}
//
//	handler := NewCreateRiderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create rider: %w", err)
//	}
//	fmt.Printf("Username: %s, token: %s", cmd.Username(), cmd.OneTimeToken())
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID     kernel.UUID
	name        string
	phone       string
	service     kernel.ServiceKind
	address     string
	location    *kernel.GeoPoint
	credentials rider.Credentials
	token       string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a new rider.
// Automatically generates a unique ID and portal credentials.
func NewCreateRiderCommand(
	name string,
	phone string,
	service kernel.ServiceKind,
	address string,
	location *kernel.GeoPoint,
) (CreateRiderCommand, error) {
	command := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(kernel.NewUUID()),
		command.setName(name),
		command.setPhone(phone),
		command.setService(service),
		command.setLocation(location),
	); err != nil {
		return CreateRiderCommand{}, err
	}
	command.address = address

	credentials, token, err := rider.GenerateCredentials(name)
	if err != nil {
		return CreateRiderCommand{}, err
	}
	command.credentials = credentials
	command.token = token

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRiderCommandIsNotConstructed if validation fails.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the generated rider ID.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the rider name from the command.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// Phone returns the rider phone from the command.
func (c CreateRiderCommand) Phone() string {
	return c.phone
}

// Service returns the rider service category from the command.
func (c CreateRiderCommand) Service() kernel.ServiceKind {
	return c.service
}

// Address returns the rider address from the command.
func (c CreateRiderCommand) Address() string {
	return c.address
}

// Location returns the optional base coordinate from the command.
func (c CreateRiderCommand) Location() *kernel.GeoPoint {
	return c.location
}

// Username returns the generated portal username.
func (c CreateRiderCommand) Username() string {
	return c.credentials.Username()
}

// OneTimeToken returns the plaintext access token. Surfaced to the
// administrator once; only its hash is stored.
func (c CreateRiderCommand) OneTimeToken() string {
	return c.token
}

// Credentials returns the generated credential pair for persistence.
func (c CreateRiderCommand) Credentials() rider.Credentials {
	return c.credentials
}

func (c *CreateRiderCommand) setRiderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.riderID = id
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateRiderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *CreateRiderCommand) setService(service kernel.ServiceKind) error {
	if err := service.Validate(); err != nil {
		return err
	}

	c.service = service
	return nil
}

func (c *CreateRiderCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
