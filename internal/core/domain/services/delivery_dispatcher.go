package services

import (
	"errors"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when no registered driver can carry the order.
// Drivers without a vehicle and drivers whose vehicle refuses the weight are skipped.
var ErrDriverNotFound = errors.New("driver not found")

// DeliveryDispatcher selects a driver for a pending order.
//
// Business rules:
//   - The driver must hold a vehicle whose CanCarry accepts the order weight
//   - The driver with the fewest queued orders wins
//   - Ties go to the driver registered first
//
// Example usage:
//
//	dispatcher := services.NewDeliveryDispatcher()
//	chosen, err := dispatcher.Dispatch(d, "CMD-42")
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // the order stays pending
//	}
type DeliveryDispatcher struct{}

// NewDeliveryDispatcher creates a DeliveryDispatcher.
func NewDeliveryDispatcher() DeliveryDispatcher {
	return DeliveryDispatcher{}
}

// Dispatch chooses a driver for the pending order orderID and assigns it through
// the depot, so the usual assignment rules and events apply.
func (s DeliveryDispatcher) Dispatch(d *depot.Depot, orderID string) (*driver.Driver, error) {
	o, err := d.PendingOrder(orderID)
	if err != nil {
		return nil, err
	}

	best, err := s.FindBestDriver(o, d.Drivers())
	if err != nil {
		return nil, err
	}

	if err = d.AssignOrder(best.ID(), o.ID()); err != nil {
		return nil, err
	}

	return d.Driver(best.ID())
}

// FindBestDriver applies the selection rules to drivers without changing anything.
func (s DeliveryDispatcher) FindBestDriver(o *order.Order, drivers []*driver.Driver) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var best *driver.Driver
	for _, dr := range drivers {
		if err := dr.Validate(); err != nil {
			return nil, err
		}
		if !dr.HasVehicle() || !dr.Vehicle().CanCarry(o.WeightKg()) {
			continue
		}
		if best == nil || dr.PendingOrderCount() < best.PendingOrderCount() {
			best = dr
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}
	return best, nil
}
