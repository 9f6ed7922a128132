// Package queries contains read operations over the depot.
// Queries return read models detached from the aggregate, so callers may keep them
// after the read lock is released.
package queries

import (
	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/core/domain/model/vehicle"
)

// VehicleResponse is the read model of a vehicle.
// CapacityTonnes is set for trucks, MaxSpeedKmh for motorcycles.
type VehicleResponse struct {
	ID             kernel.UUID
	Kind           vehicle.Kind
	Brand          string
	Model          string
	Registration   string
	CapacityTonnes float64
	MaxSpeedKmh    float64
	Description    string
}

// OrderResponse is the read model of an order.
type OrderResponse struct {
	ID          string
	Destination string
	WeightKg    float64
	Status      order.Status
	Description string
}

// DriverResponse is the read model of a driver. Vehicle is nil when the driver has none.
type DriverResponse struct {
	ID            kernel.UUID
	Name          string
	Vehicle       *VehicleResponse
	PendingOrders []OrderResponse
	Description   string
}

func toVehicleResponse(v vehicle.Vehicle) VehicleResponse {
	r := VehicleResponse{
		ID:           v.ID(),
		Kind:         v.Kind(),
		Brand:        v.Brand(),
		Model:        v.Model(),
		Registration: v.Registration(),
		Description:  v.String(),
	}

	switch typed := v.(type) {
	case *vehicle.Truck:
		r.CapacityTonnes = typed.CapacityTonnes()
	case *vehicle.Motorcycle:
		r.MaxSpeedKmh = typed.MaxSpeedKmh()
	}
	return r
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID(),
		Destination: o.Destination(),
		WeightKg:    o.WeightKg(),
		Status:      o.Status(),
		Description: o.String(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toDriverResponse(d *driver.Driver) DriverResponse {
	r := DriverResponse{
		ID:            d.ID(),
		Name:          d.Name(),
		PendingOrders: toOrderResponses(d.PendingOrders()),
		Description:   d.String(),
	}
	if d.HasVehicle() {
		v := toVehicleResponse(d.Vehicle())
		r.Vehicle = &v
	}
	return r
}
