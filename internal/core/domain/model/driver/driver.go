package driver

import (
	"errors"
	"fmt"
	"unicode"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"

	"golang.org/x/text/unicode/norm"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created through NewDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrNameIsRequired is returned for an empty name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrNameIsInvalid is returned when the name holds anything but letters.
	ErrNameIsInvalid = errs.NewValueIsInvalidErrorWithCause("name", errors.New("only letters are allowed"))
	// ErrVehicleAlreadyAssigned is returned when the driver already holds a vehicle.
	ErrVehicleAlreadyAssigned = errors.New("driver already has a vehicle")
	// ErrVehicleIsRequired is returned when assigning a nil or unconstructed vehicle.
	ErrVehicleIsRequired = errs.NewValueIsRequiredError("vehicle")
	// ErrOrderIsRequired is returned when queueing a nil or unconstructed order.
	ErrOrderIsRequired = errs.NewValueIsRequiredError("order")
)

// Driver performs the deliveries queued by the depot with the vehicle it holds.
type Driver struct {
	id            kernel.UUID
	name          string
	vehicle       vehicle.Vehicle
	pendingOrders []*order.Order
	guard         guard.ConstructorGuard
}

// NewDriver creates a Driver without a vehicle.
// The name is NFC-normalised before validation and stored normalised.
func NewDriver(id kernel.UUID, name string) (*Driver, error) {
	normalized := norm.NFC.String(name)

	var errName error
	switch {
	case normalized == "":
		errName = ErrNameIsRequired
	case !IsValidName(normalized):
		errName = ErrNameIsInvalid
	}

	if err := errors.Join(id.Validate(), errName); err != nil {
		return nil, err
	}

	return &Driver{
		id:    id,
		name:  normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// IsValidName reports whether name is non-empty and made of letters only.
// Letters with diacritics are accepted in both composed and decomposed forms.
func IsValidName(name string) bool {
	normalized := norm.NFC.String(name)
	if normalized == "" {
		return false
	}
	for _, r := range normalized {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Validate ensures the Driver was built by NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Name returns the normalised name.
func (d *Driver) Name() string { return d.name }

// Vehicle returns the held vehicle, nil when the driver has none.
func (d *Driver) Vehicle() vehicle.Vehicle { return d.vehicle }

// HasVehicle reports whether a vehicle is assigned.
func (d *Driver) HasVehicle() bool { return d.vehicle != nil }

// AssignVehicle gives the driver its vehicle. It is meant to be called by the depot,
// which also removes the vehicle from its pool.
func (d *Driver) AssignVehicle(v vehicle.Vehicle) error {
	if v == nil || v.Validate() != nil {
		return ErrVehicleIsRequired
	}
	if d.HasVehicle() {
		return ErrVehicleAlreadyAssigned
	}

	d.vehicle = v
	return nil
}

// AddOrder appends o to the queue. It does not require a vehicle.
func (d *Driver) AddOrder(o *order.Order) error {
	if o.Validate() != nil {
		return ErrOrderIsRequired
	}

	d.pendingOrders = append(d.pendingOrders, o)
	return nil
}

// PendingOrders returns a copy of the queue in assignment order.
func (d *Driver) PendingOrders() []*order.Order {
	out := make([]*order.Order, len(d.pendingOrders))
	copy(out, d.pendingOrders)
	return out
}

// PendingOrderCount returns the queue length.
func (d *Driver) PendingOrderCount() int { return len(d.pendingOrders) }

// PerformDeliveries attempts every queued order with the held vehicle.
//
// Without a vehicle nothing happens and the queue is kept. Otherwise each
// order is attempted in queue order, carried orders become Delivered and the
// queue is emptied.
func (d *Driver) PerformDeliveries() Report {
	report := Report{DriverID: d.id, DriverName: d.name}

	switch {
	case !d.HasVehicle():
		report.Kind = NoVehicle
		return report
	case len(d.pendingOrders) == 0:
		report.Kind = NoOrders
		return report
	}

	report.Kind = Completed
	report.Lines = make([]ReportLine, 0, len(d.pendingOrders))
	for _, o := range d.pendingOrders {
		outcome := d.vehicle.AttemptDelivery(o)
		if outcome.Delivered {
			o.MarkDelivered()
		}
		report.Lines = append(report.Lines, ReportLine{Outcome: outcome, Status: o.Status()})
	}
	d.pendingOrders = nil

	return report
}

// Clone returns a copy of the driver with its own queue of cloned orders.
// Vehicles are immutable and stay shared.
func (d *Driver) Clone() *Driver {
	c := *d
	c.pendingOrders = make([]*order.Order, len(d.pendingOrders))
	for i, o := range d.pendingOrders {
		c.pendingOrders[i] = o.Clone()
	}
	return &c
}

func (d *Driver) String() string {
	v := "No vehicle"
	if d.HasVehicle() {
		v = d.vehicle.String()
	}
	return fmt.Sprintf("Driver: %s, Vehicle: [%s], Orders in progress: %d", d.name, v, len(d.pendingOrders))
}
