package depot

import (
	"time"

	"depot/internal/core/domain/model/kernel"
)

// EventType names what happened in the depot.
type EventType string

const (
	// VehicleAssigned is recorded when a driver takes a vehicle from the pool.
	VehicleAssigned EventType = "vehicle.assigned"
	// OrderAssigned is recorded when a pending order is queued on a driver.
	OrderAssigned EventType = "order.assigned"
	// OrderDelivered is recorded for every order carried during a delivery run.
	OrderDelivered EventType = "order.delivered"
	// OrderDeliveryFailed is recorded for every order refused by the vehicle during a run.
	OrderDeliveryFailed EventType = "order.delivery_failed"
)

// Event is a domain event raised by the Depot.
// VehicleID is the nil UUID and OrderID is empty when they do not apply.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	DriverID   kernel.UUID
	VehicleID  kernel.UUID
	OrderID    string
	Message    string
	OccurredAt time.Time
}

func newEvent(t EventType, driverID kernel.UUID) Event {
	return Event{
		ID:         kernel.NewUUID(),
		Type:       t,
		DriverID:   driverID,
		OccurredAt: time.Now().UTC(),
	}
}
