package commands

import (
	"errors"

	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrAddDriverCommandIsNotConstructed = errors.New(
	"AddDriverCommand must be created via NewAddDriverCommand constructor",
)

// AddDriverCommand represents a request to register a driver without vehicle.
type AddDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewAddDriverCommand creates a command for a driver with a freshly generated identifier.
// The name must contain letters only.
func NewAddDriverCommand(name string) (AddDriverCommand, error) {
	if name == "" {
		return AddDriverCommand{}, driver.ErrNameIsRequired
	}
	if !driver.IsValidName(name) {
		return AddDriverCommand{}, driver.ErrNameIsInvalid
	}

	return AddDriverCommand{
		driverID: kernel.NewUUID(),
		name:     name,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddDriverCommand) Validate() error {
	return c.guard.Validate(ErrAddDriverCommandIsNotConstructed)
}

// DriverID returns the identifier the new driver will get.
func (c AddDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver name as given.
func (c AddDriverCommand) Name() string {
	return c.name
}
