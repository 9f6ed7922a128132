package vehicle

import (
	"errors"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
)

// ErrTruckIsNotConstructed is returned when a Truck was not created through NewTruck.
var ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")

// Truck carries any order whose weight does not exceed its capacity.
type Truck struct {
	identity
	capacityTonnes float64
}

// NewTruck creates a Truck. capacityTonnes must be a positive finite number.
//
//	truck, err := vehicle.NewTruck(kernel.NewUUID(), "Renault", "Master", "AB-123-CD", 1.5)
func NewTruck(id kernel.UUID, brand, model, registration string, capacityTonnes float64) (*Truck, error) {
	ident, err := newIdentity(id, brand, model, registration)
	if err = errors.Join(err, positiveFinite("capacityTonnes", capacityTonnes)); err != nil {
		return nil, err
	}

	return &Truck{identity: ident, capacityTonnes: capacityTonnes}, nil
}

// Kind returns KindTruck.
func (t *Truck) Kind() Kind { return KindTruck }

// CapacityTonnes returns the payload capacity in tonnes.
func (t *Truck) CapacityTonnes() float64 { return t.capacityTonnes }

// CapacityKg returns the payload capacity in kilograms.
func (t *Truck) CapacityKg() float64 { return t.capacityTonnes * 1000 }

// CanCarry reports whether weightKg fits the capacity. The boundary is inclusive.
func (t *Truck) CanCarry(weightKg float64) bool {
	return weightKg <= t.CapacityKg()
}

// AttemptDelivery checks the order weight against the truck capacity.
func (t *Truck) AttemptDelivery(o *order.Order) Outcome {
	if t.CanCarry(o.WeightKg()) {
		return Outcome{
			OrderID:   o.ID(),
			Delivered: true,
			Message: fmt.Sprintf("Truck %s %s (capacity %s t) delivers order %s.",
				t.brand, t.model, formatNumber(t.capacityTonnes), o.ID()),
		}
	}

	return Outcome{
		OrderID: o.ID(),
		Message: fmt.Sprintf("Truck %s %s (capacity %s t) cannot deliver order %s: weight %s kg exceeds capacity.",
			t.brand, t.model, formatNumber(t.capacityTonnes), o.ID(), formatNumber(o.WeightKg())),
	}
}

// Validate ensures the Truck was built by NewTruck.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) String() string {
	return fmt.Sprintf("%s, Capacity: %s t", t.describe(), formatNumber(t.capacityTonnes))
}
