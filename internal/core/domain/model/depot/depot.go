package depot

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
	"depot/internal/pkg/errs"
)

var (
	// ErrDriverNotRegistered is returned when the driver is unknown to the depot.
	ErrDriverNotRegistered = errors.New("driver is not registered")
	// ErrVehicleNotAvailable is returned when the vehicle is not in the available pool.
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
	// ErrOrderNotPending is returned when the order is not waiting in the depot.
	ErrOrderNotPending = errors.New("order is not pending")
	// ErrDriverHasNoVehicle is returned when queueing an order on a driver without vehicle.
	ErrDriverHasNoVehicle = errors.New("driver has no vehicle")
	// ErrDriverAlreadyRegistered is returned when adding a driver twice.
	ErrDriverAlreadyRegistered = errors.New("driver is already registered")
	// ErrVehicleAlreadyTracked is returned when adding a vehicle the depot already knows.
	ErrVehicleAlreadyTracked = errors.New("vehicle is already tracked")
	// ErrOrderAlreadyTracked is returned when adding an order the depot already knows.
	ErrOrderAlreadyTracked = errors.New("order is already tracked")
	// ErrOrderAlreadyDelivered is returned when adding a delivered order as pending.
	ErrOrderAlreadyDelivered = errors.New("order is already delivered")
)

// Depot is the aggregate root of the delivery simulation.
type Depot struct {
	availableVehicles []vehicle.Vehicle
	drivers           []*driver.Driver
	pendingOrders     []*order.Order
	events            []Event
}

// NewDepot creates an empty depot.
func NewDepot() *Depot {
	return &Depot{}
}

// AddVehicle puts v in the available pool.
func (d *Depot) AddVehicle(v vehicle.Vehicle) error {
	if v == nil {
		return errs.NewValueIsRequiredError("vehicle")
	}
	if err := v.Validate(); err != nil {
		return err
	}
	if d.tracksVehicle(v.ID()) {
		return fmt.Errorf("%w: %s", ErrVehicleAlreadyTracked, v.ID())
	}

	d.availableVehicles = append(d.availableVehicles, v)
	return nil
}

// AddDriver registers dr. A driver registered with a vehicle keeps it: the
// vehicle must not be tracked by the depot yet.
func (d *Depot) AddDriver(dr *driver.Driver) error {
	if err := dr.Validate(); err != nil {
		return err
	}
	if d.findDriver(dr.ID()) >= 0 {
		return fmt.Errorf("%w: %s", ErrDriverAlreadyRegistered, dr.ID())
	}
	if v := dr.Vehicle(); v != nil && d.tracksVehicle(v.ID()) {
		return fmt.Errorf("%w: %s", ErrVehicleAlreadyTracked, v.ID())
	}
	for _, o := range dr.PendingOrders() {
		if d.tracksOrder(o.ID()) {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyTracked, o.ID())
		}
	}

	d.drivers = append(d.drivers, dr)
	return nil
}

// AddPendingOrder puts o in the pending pool.
func (d *Depot) AddPendingOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Status() != order.Pending {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyDelivered, o.ID())
	}
	if d.tracksOrder(o.ID()) {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyTracked, o.ID())
	}

	d.pendingOrders = append(d.pendingOrders, o)
	return nil
}

// AssignVehicle moves an available vehicle to a registered driver. Nothing
// changes when an error is returned.
func (d *Depot) AssignVehicle(driverID, vehicleID kernel.UUID) error {
	dr, err := d.registered(driverID)
	if err != nil {
		return err
	}
	idx := d.findVehicle(vehicleID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrVehicleNotAvailable, vehicleID)
	}
	if err = dr.AssignVehicle(d.availableVehicles[idx]); err != nil {
		return err
	}

	d.availableVehicles = slices.Delete(d.availableVehicles, idx, idx+1)

	e := newEvent(VehicleAssigned, driverID)
	e.VehicleID = vehicleID
	e.Message = fmt.Sprintf("%s takes vehicle %s", dr.Name(), dr.Vehicle().Registration())
	d.raise(e)
	return nil
}

// AssignOrder moves a pending order to the queue of a driver holding a vehicle.
func (d *Depot) AssignOrder(driverID kernel.UUID, orderID string) error {
	dr, err := d.registered(driverID)
	if err != nil {
		return err
	}
	if !dr.HasVehicle() {
		return fmt.Errorf("%w: %s", ErrDriverHasNoVehicle, dr.Name())
	}
	idx := d.findPendingOrder(orderID)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrOrderNotPending, orderID)
	}
	if err = dr.AddOrder(d.pendingOrders[idx]); err != nil {
		return err
	}

	d.pendingOrders = slices.Delete(d.pendingOrders, idx, idx+1)

	e := newEvent(OrderAssigned, driverID)
	e.VehicleID = dr.Vehicle().ID()
	e.OrderID = orderID
	e.Message = fmt.Sprintf("order %s queued on %s", orderID, dr.Name())
	d.raise(e)
	return nil
}

// PerformDeliveries runs the deliveries of a registered driver and records one
// event per attempted order.
func (d *Depot) PerformDeliveries(driverID kernel.UUID) (driver.Report, error) {
	dr, err := d.registered(driverID)
	if err != nil {
		return driver.Report{}, err
	}

	report := dr.PerformDeliveries()
	for _, line := range report.Lines {
		t := OrderDeliveryFailed
		if line.Outcome.Delivered {
			t = OrderDelivered
		}
		e := newEvent(t, driverID)
		e.VehicleID = dr.Vehicle().ID()
		e.OrderID = line.Outcome.OrderID
		e.Message = line.Outcome.Message
		d.raise(e)
	}

	return report, nil
}

// Driver returns a copy of a registered driver.
func (d *Depot) Driver(id kernel.UUID) (*driver.Driver, error) {
	dr, err := d.registered(id)
	if err != nil {
		return nil, err
	}
	return dr.Clone(), nil
}

// AvailableVehicle returns a vehicle of the available pool. Vehicles are immutable and shared.
func (d *Depot) AvailableVehicle(id kernel.UUID) (vehicle.Vehicle, error) {
	idx := d.findVehicle(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrVehicleNotAvailable, id)
	}
	return d.availableVehicles[idx], nil
}

// PendingOrder returns a copy of an order of the pending pool.
func (d *Depot) PendingOrder(id string) (*order.Order, error) {
	idx := d.findPendingOrder(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotPending, id)
	}
	return d.pendingOrders[idx].Clone(), nil
}

// AvailableVehicles returns a copy of the available pool in insertion order.
func (d *Depot) AvailableVehicles() []vehicle.Vehicle {
	return slices.Clone(d.availableVehicles)
}

// Drivers returns copies of the registered drivers in registration order.
func (d *Depot) Drivers() []*driver.Driver {
	out := make([]*driver.Driver, len(d.drivers))
	for i, dr := range d.drivers {
		out[i] = dr.Clone()
	}
	return out
}

// PendingOrders returns copies of the pending orders in insertion order.
func (d *Depot) PendingOrders() []*order.Order {
	out := make([]*order.Order, len(d.pendingOrders))
	for i, o := range d.pendingOrders {
		out[i] = o.Clone()
	}
	return out
}

// Clone returns a deep copy of the depot. Changes made to the copy never reach d.
func (d *Depot) Clone() *Depot {
	c := &Depot{
		availableVehicles: slices.Clone(d.availableVehicles),
		drivers:           make([]*driver.Driver, len(d.drivers)),
		pendingOrders:     make([]*order.Order, len(d.pendingOrders)),
		events:            slices.Clone(d.events),
	}
	for i, dr := range d.drivers {
		c.drivers[i] = dr.Clone()
	}
	for i, o := range d.pendingOrders {
		c.pendingOrders[i] = o.Clone()
	}
	return c
}

// PullEvents returns the buffered events and clears the buffer.
func (d *Depot) PullEvents() []Event {
	out := d.events
	d.events = nil
	return out
}

// DescribeState renders the three pools as text.
func (d *Depot) DescribeState() string {
	var b strings.Builder

	b.WriteString("--- Depot state ---\n")

	b.WriteString("Available vehicles:\n")
	writeSection(&b, d.availableVehicles, "No vehicles available.")

	b.WriteString("\nRegistered drivers:\n")
	writeSection(&b, d.drivers, "No drivers registered.")

	b.WriteString("\nPending orders:\n")
	writeSection(&b, d.pendingOrders, "No pending orders.")

	return b.String()
}

func writeSection[T fmt.Stringer](b *strings.Builder, items []T, empty string) {
	if len(items) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	for _, item := range items {
		b.WriteString("- " + item.String() + "\n")
	}
}

func (d *Depot) raise(e Event) {
	d.events = append(d.events, e)
}

// registered returns the live driver for the depot's own mutators.
func (d *Depot) registered(id kernel.UUID) (*driver.Driver, error) {
	idx := d.findDriver(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrDriverNotRegistered, id)
	}
	return d.drivers[idx], nil
}

func (d *Depot) findDriver(id kernel.UUID) int {
	return slices.IndexFunc(d.drivers, func(dr *driver.Driver) bool { return dr.ID().IsEqual(id) })
}

func (d *Depot) findVehicle(id kernel.UUID) int {
	return slices.IndexFunc(d.availableVehicles, func(v vehicle.Vehicle) bool { return v.ID().IsEqual(id) })
}

func (d *Depot) findPendingOrder(id string) int {
	return slices.IndexFunc(d.pendingOrders, func(o *order.Order) bool { return o.ID() == id })
}

func (d *Depot) tracksVehicle(id kernel.UUID) bool {
	if d.findVehicle(id) >= 0 {
		return true
	}
	return slices.ContainsFunc(d.drivers, func(dr *driver.Driver) bool {
		return dr.HasVehicle() && dr.Vehicle().ID().IsEqual(id)
	})
}

func (d *Depot) tracksOrder(id string) bool {
	if d.findPendingOrder(id) >= 0 {
		return true
	}
	for _, dr := range d.drivers {
		if slices.ContainsFunc(dr.PendingOrders(), func(o *order.Order) bool { return o.ID() == id }) {
			return true
		}
	}
	return false
}
