package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/guard"
)

var (
	ErrAddVehicleCommandIsNotConstructed = errors.New(
		"AddVehicleCommand must be created via NewAddVehicleCommand constructor",
	)
	ErrVehicleKindIsInvalid = errors.New("vehicle kind must be Truck or Motorcycle")
)

// AddVehicleCommand represents a request to put a new vehicle in the depot pool.
// Measure is the capacity in tonnes for a truck and the top speed in km/h for a motorcycle.
//
// Example:
//
//	cmd, err := NewAddVehicleCommand(vehicle.KindTruck, "Renault", "Master", "AB-123-CD", 3.5)
//	if err != nil {
//	    return fmt.Errorf("invalid vehicle data: %w", err)
//	}
//
//	handler := NewAddVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add vehicle: %w", err)
//	}
//	fmt.Printf("Vehicle %s is available", cmd.VehicleID())
type AddVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	kind         vehicle.Kind
	brand        string
	model        string
	registration string
	measure      float64

	guard guard.ConstructorGuard
}

// NewAddVehicleCommand creates a command for a vehicle with a freshly generated identifier.
// Only the kind is checked here; the vehicle constructor validates the rest.
func NewAddVehicleCommand(
	kind vehicle.Kind,
	brand, model, registration string,
	measure float64,
) (AddVehicleCommand, error) {
	if kind != vehicle.KindTruck && kind != vehicle.KindMotorcycle {
		return AddVehicleCommand{}, ErrVehicleKindIsInvalid
	}

	return AddVehicleCommand{
		vehicleID:    kernel.NewUUID(),
		kind:         kind,
		brand:        brand,
		model:        model,
		registration: registration,
		measure:      measure,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAddVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier the new vehicle will get.
func (c AddVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Kind returns the vehicle variant.
func (c AddVehicleCommand) Kind() vehicle.Kind {
	return c.kind
}

// Brand returns the manufacturer.
func (c AddVehicleCommand) Brand() string {
	return c.brand
}

// Model returns the model name.
func (c AddVehicleCommand) Model() string {
	return c.model
}

// Registration returns the registration plate.
func (c AddVehicleCommand) Registration() string {
	return c.registration
}

// Measure returns the capacity in tonnes or the top speed in km/h, depending on Kind.
func (c AddVehicleCommand) Measure() float64 {
	return c.measure
}

// Build creates the vehicle described by the command.
func (c AddVehicleCommand) Build() (vehicle.Vehicle, error) {
	if c.kind == vehicle.KindTruck {
		return vehicle.NewTruck(c.vehicleID, c.brand, c.model, c.registration, c.measure)
	}
	return vehicle.NewMotorcycle(c.vehicleID, c.brand, c.model, c.registration, c.measure)
}
