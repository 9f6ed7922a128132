// Package seed fills the depot from a YAML fixture at start-up.
//
// A fixture lists vehicles, drivers and orders. Vehicles and drivers carry a
// key other entries refer to:
//
//	vehicles:
//	  - key: van
//	    kind: truck
//	    brand: Renault
//	    model: Master
//	    registration: AB-123-CD
//	    capacityTonnes: 3.5
//	drivers:
//	  - key: bob
//	    name: Bob
//	    vehicle: van
//	orders:
//	  - id: ORD-1
//	    destination: Paris
//	    weightKg: 12.5
//	    driver: bob
//
// Every entry goes through the same commands as the HTTP API.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"

	"gopkg.in/yaml.v3"
)

var (
	// ErrDuplicateKey is returned when two vehicles or two drivers share a key.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnknownKey is returned when an entry refers to a key defined nowhere above it.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidWeight is returned for an order outside of (0, order.MaxWeightKg].
	ErrInvalidWeight = errors.New("weight must be above 0 and at most 100 kg")
	// ErrMissingMeasure is returned for a vehicle without the measure of its kind.
	ErrMissingMeasure = errors.New("capacityTonnes is required for a truck, maxSpeedKmh for a motorcycle")
)

// Fixture is the document layout.
type Fixture struct {
	Vehicles []VehicleEntry `yaml:"vehicles"`
	Drivers  []DriverEntry  `yaml:"drivers"`
	Orders   []OrderEntry   `yaml:"orders"`
}

// VehicleEntry describes a truck (capacityTonnes) or a motorcycle (maxSpeedKmh).
type VehicleEntry struct {
	Key            string   `yaml:"key"`
	Kind           string   `yaml:"kind"`
	Brand          string   `yaml:"brand"`
	Model          string   `yaml:"model"`
	Registration   string   `yaml:"registration"`
	CapacityTonnes *float64 `yaml:"capacityTonnes"`
	MaxSpeedKmh    *float64 `yaml:"maxSpeedKmh"`
}

// DriverEntry describes a driver, optionally holding the vehicle with key Vehicle.
type DriverEntry struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Vehicle string `yaml:"vehicle"`
}

// OrderEntry describes an order, queued on the driver with key Driver when set.
type OrderEntry struct {
	ID          string  `yaml:"id"`
	Destination string  `yaml:"destination"`
	WeightKg    float64 `yaml:"weightKg"`
	Driver      string  `yaml:"driver"`
}

// Summary counts what a load created.
type Summary struct {
	Vehicles    int
	Drivers     int
	Orders      int
	Assignments int
}

// Handlers groups the commands the loader issues.
type Handlers struct {
	AddVehicle    commands.AddVehicleCommandHandler
	AddDriver     commands.AddDriverCommandHandler
	CreateOrder   commands.CreateOrderCommandHandler
	AssignVehicle commands.AssignVehicleCommandHandler
	AssignOrder   commands.AssignOrderCommandHandler
}

// Loader applies fixtures to the depot.
type Loader struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewLoader creates a loader issuing handlers.
func NewLoader(handlers Handlers, logger *slog.Logger) *Loader {
	return &Loader{
		handlers: handlers,
		logger:   logger.With("component", "seed"),
	}
}

// LoadFile reads and applies the fixture at path.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	summary, err := l.Load(ctx, f)
	if err != nil {
		return summary, fmt.Errorf("seed %s: %w", path, err)
	}
	return summary, nil
}

// Load decodes a fixture from r and applies it. Unknown fields are rejected.
// Entries applied before a failure stay in the depot.
func (l *Loader) Load(ctx context.Context, r io.Reader) (Summary, error) {
	var fixture Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixture); err != nil && !errors.Is(err, io.EOF) {
		return Summary{}, fmt.Errorf("decode fixture: %w", err)
	}

	return l.Apply(ctx, fixture)
}

// Apply creates vehicles, then drivers with their vehicles, then orders with their assignments.
func (l *Loader) Apply(ctx context.Context, fixture Fixture) (Summary, error) {
	var summary Summary

	vehicles := make(map[string]kernel.UUID, len(fixture.Vehicles))
	for i, entry := range fixture.Vehicles {
		id, err := l.addVehicle(ctx, entry, vehicles)
		if err != nil {
			return summary, fmt.Errorf("vehicles[%d]: %w", i, err)
		}
		if entry.Key != "" {
			vehicles[entry.Key] = id
		}
		summary.Vehicles++
	}

	drivers := make(map[string]kernel.UUID, len(fixture.Drivers))
	for i, entry := range fixture.Drivers {
		id, assigned, err := l.addDriver(ctx, entry, vehicles, drivers)
		if err != nil {
			return summary, fmt.Errorf("drivers[%d]: %w", i, err)
		}
		if entry.Key != "" {
			drivers[entry.Key] = id
		}
		summary.Drivers++
		if assigned {
			summary.Assignments++
		}
	}

	for i, entry := range fixture.Orders {
		assigned, err := l.addOrder(ctx, entry, drivers)
		if err != nil {
			return summary, fmt.Errorf("orders[%d]: %w", i, err)
		}
		summary.Orders++
		if assigned {
			summary.Assignments++
		}
	}

	l.logger.InfoContext(ctx, "Seed applied",
		"vehicles", summary.Vehicles,
		"drivers", summary.Drivers,
		"orders", summary.Orders,
		"assignments", summary.Assignments,
	)
	return summary, nil
}

func (l *Loader) addVehicle(ctx context.Context, entry VehicleEntry, known map[string]kernel.UUID) (kernel.UUID, error) {
	if err := checkKey(entry.Key, known); err != nil {
		return kernel.UUID{}, err
	}

	kind, err := vehicle.ParseKind(entry.Kind)
	if err != nil {
		return kernel.UUID{}, err
	}

	measure := entry.CapacityTonnes
	if kind == vehicle.KindMotorcycle {
		measure = entry.MaxSpeedKmh
	}
	if measure == nil {
		return kernel.UUID{}, ErrMissingMeasure
	}

	cmd, err := commands.NewAddVehicleCommand(kind, entry.Brand, entry.Model, entry.Registration, *measure)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = l.handlers.AddVehicle.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}
	return cmd.VehicleID(), nil
}

func (l *Loader) addDriver(
	ctx context.Context,
	entry DriverEntry,
	vehicles, known map[string]kernel.UUID,
) (kernel.UUID, bool, error) {
	if err := checkKey(entry.Key, known); err != nil {
		return kernel.UUID{}, false, err
	}

	var vehicleID kernel.UUID
	if entry.Vehicle != "" {
		id, ok := vehicles[entry.Vehicle]
		if !ok {
			return kernel.UUID{}, false, fmt.Errorf("%w: vehicle %q", ErrUnknownKey, entry.Vehicle)
		}
		vehicleID = id
	}

	cmd, err := commands.NewAddDriverCommand(entry.Name)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if err = l.handlers.AddDriver.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, false, err
	}

	if entry.Vehicle == "" {
		return cmd.DriverID(), false, nil
	}

	assign, err := commands.NewAssignVehicleCommand(cmd.DriverID(), vehicleID)
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if err = l.handlers.AssignVehicle.Handle(ctx, assign); err != nil {
		return kernel.UUID{}, false, err
	}
	return cmd.DriverID(), true, nil
}

func (l *Loader) addOrder(ctx context.Context, entry OrderEntry, drivers map[string]kernel.UUID) (bool, error) {
	if !order.IsValidWeight(entry.WeightKg) {
		return false, fmt.Errorf("%w: order %s weighs %v kg", ErrInvalidWeight, entry.ID, entry.WeightKg)
	}

	var driverID kernel.UUID
	if entry.Driver != "" {
		id, ok := drivers[entry.Driver]
		if !ok {
			return false, fmt.Errorf("%w: driver %q", ErrUnknownKey, entry.Driver)
		}
		driverID = id
	}

	cmd, err := commands.NewCreateOrderCommand(entry.ID, entry.Destination, entry.WeightKg)
	if err != nil {
		return false, err
	}
	if err = l.handlers.CreateOrder.Handle(ctx, cmd); err != nil {
		return false, err
	}

	if entry.Driver == "" {
		return false, nil
	}

	assign, err := commands.NewAssignOrderCommand(driverID, entry.ID)
	if err != nil {
		return false, err
	}
	if err = l.handlers.AssignOrder.Handle(ctx, assign); err != nil {
		return false, err
	}
	return true, nil
}

// checkKey rejects repeated keys. Keys are optional for entries nothing refers to.
func checkKey(key string, known map[string]kernel.UUID) error {
	if key == "" {
		return nil
	}
	if _, ok := known[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	return nil
}
