package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand asks the depot to hand an available vehicle to a driver.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates the command. Both identifiers must be valid UUIDs.
func NewAssignVehicleCommand(driverID, vehicleID kernel.UUID) (AssignVehicleCommand, error) {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return AssignVehicleCommand{}, err
	}

	return AssignVehicleCommand{
		driverID:  driverID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// DriverID returns the receiving driver.
func (c AssignVehicleCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to hand over.
func (c AssignVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
