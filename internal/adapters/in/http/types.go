package http

import (
	"strings"

	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/driver"
	"depot/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created carries the identifier of a created resource.
type Created struct {
	ID string `json:"id"`
}

// NewVehicle is the body of POST /api/v1/vehicles.
type NewVehicle struct {
	Kind           string   `json:"kind"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Registration   string   `json:"registration"`
	CapacityTonnes *float64 `json:"capacityTonnes,omitempty"`
	MaxSpeedKmh    *float64 `json:"maxSpeedKmh,omitempty"`
}

// NewDriver is the body of POST /api/v1/drivers.
type NewDriver struct {
	Name string `json:"name"`
}

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weightKg"`
}

// AssignVehicle is the body of POST /api/v1/drivers/{driverId}/vehicle.
type AssignVehicle struct {
	VehicleID uuid.UUID `json:"vehicleId"`
}

// AssignOrder is the body of POST /api/v1/drivers/{driverId}/orders.
type AssignOrder struct {
	OrderID string `json:"orderId"`
}

// Vehicle is an available or assigned vehicle.
type Vehicle struct {
	ID             uuid.UUID `json:"id"`
	Kind           string    `json:"kind"`
	Brand          string    `json:"brand"`
	Model          string    `json:"model"`
	Registration   string    `json:"registration"`
	CapacityTonnes *float64  `json:"capacityTonnes,omitempty"`
	MaxSpeedKmh    *float64  `json:"maxSpeedKmh,omitempty"`
	Description    string    `json:"description"`
}

// Order is a pending or delivered order.
type Order struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	WeightKg    float64 `json:"weightKg"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
}

// Driver is a registered driver with its vehicle and queued orders.
type Driver struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Vehicle       *Vehicle  `json:"vehicle,omitempty"`
	PendingOrders []Order   `json:"pendingOrders"`
	Description   string    `json:"description"`
}

// DeliveryLine is the result of one delivery attempt.
type DeliveryLine struct {
	OrderID   string `json:"orderId"`
	Delivered bool   `json:"delivered"`
	Message   string `json:"message"`
	Status    string `json:"status"`
}

// DeliveryReport is the response of POST /api/v1/drivers/{driverId}/deliveries.
type DeliveryReport struct {
	DriverID   uuid.UUID      `json:"driverId"`
	DriverName string         `json:"driverName"`
	Kind       string         `json:"kind"`
	Report     string         `json:"report"`
	Lines      []DeliveryLine `json:"lines"`
}

// DispatchResult is the response of POST /api/v1/dispatch.
type DispatchResult struct {
	Dispatched int `json:"dispatched"`
}

func statusName(s order.Status) string {
	return strings.ToLower(s.String())
}

func toVehicle(v queries.VehicleResponse) Vehicle {
	out := Vehicle{
		ID:           v.ID.Value(),
		Kind:         strings.ToLower(v.Kind.String()),
		Brand:        v.Brand,
		Model:        v.Model,
		Registration: v.Registration,
		Description:  v.Description,
	}
	if v.CapacityTonnes > 0 {
		out.CapacityTonnes = &v.CapacityTonnes
	}
	if v.MaxSpeedKmh > 0 {
		out.MaxSpeedKmh = &v.MaxSpeedKmh
	}
	return out
}

func toOrder(o queries.OrderResponse) Order {
	return Order{
		ID:          o.ID,
		Destination: o.Destination,
		WeightKg:    o.WeightKg,
		Status:      statusName(o.Status),
		Description: o.Description,
	}
}

func toOrders(orders []queries.OrderResponse) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = toOrder(o)
	}
	return out
}

func toDriver(d queries.DriverResponse) Driver {
	out := Driver{
		ID:            d.ID.Value(),
		Name:          d.Name,
		PendingOrders: toOrders(d.PendingOrders),
		Description:   d.Description,
	}
	if d.Vehicle != nil {
		v := toVehicle(*d.Vehicle)
		out.Vehicle = &v
	}
	return out
}

func toDeliveryReport(r driver.Report) DeliveryReport {
	out := DeliveryReport{
		DriverID:   r.DriverID.Value(),
		DriverName: r.DriverName,
		Kind:       r.Kind.String(),
		Report:     r.String(),
		Lines:      make([]DeliveryLine, len(r.Lines)),
	}
	for i, l := range r.Lines {
		out.Lines[i] = DeliveryLine{
			OrderID:   l.Outcome.OrderID,
			Delivered: l.Outcome.Delivered,
			Message:   l.Outcome.Message,
			Status:    statusName(l.Status),
		}
	}
	return out
}
