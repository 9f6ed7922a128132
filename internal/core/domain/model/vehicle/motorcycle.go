package vehicle

import (
	"errors"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
)

// MotorcycleWeightLimitKg is the exclusive weight limit of a motorcycle.
const MotorcycleWeightLimitKg = 50

// ErrMotorcycleIsNotConstructed is returned when a Motorcycle was not created through NewMotorcycle.
var ErrMotorcycleIsNotConstructed = errors.New("Motorcycle must be created via NewMotorcycle constructor")

// Motorcycle carries light orders only, whatever its speed.
type Motorcycle struct {
	identity
	maxSpeedKmh float64
}

// NewMotorcycle creates a Motorcycle. maxSpeedKmh must be a positive finite number.
func NewMotorcycle(id kernel.UUID, brand, model, registration string, maxSpeedKmh float64) (*Motorcycle, error) {
	ident, err := newIdentity(id, brand, model, registration)
	if err = errors.Join(err, positiveFinite("maxSpeedKmh", maxSpeedKmh)); err != nil {
		return nil, err
	}

	return &Motorcycle{identity: ident, maxSpeedKmh: maxSpeedKmh}, nil
}

// Kind returns KindMotorcycle.
func (m *Motorcycle) Kind() Kind { return KindMotorcycle }

// MaxSpeedKmh returns the top speed in km/h.
func (m *Motorcycle) MaxSpeedKmh() float64 { return m.maxSpeedKmh }

// CanCarry reports whether weightKg is strictly below MotorcycleWeightLimitKg.
func (m *Motorcycle) CanCarry(weightKg float64) bool {
	return weightKg < MotorcycleWeightLimitKg
}

// AttemptDelivery checks the order weight against the motorcycle limit.
func (m *Motorcycle) AttemptDelivery(o *order.Order) Outcome {
	if m.CanCarry(o.WeightKg()) {
		return Outcome{
			OrderID:   o.ID(),
			Delivered: true,
			Message: fmt.Sprintf("Motorcycle %s %s (max speed %s km/h) delivers order %s.",
				m.brand, m.model, formatNumber(m.maxSpeedKmh), o.ID()),
		}
	}

	return Outcome{
		OrderID: o.ID(),
		Message: fmt.Sprintf("Motorcycle %s %s (max speed %s km/h) cannot deliver order %s: weight %s kg is too heavy.",
			m.brand, m.model, formatNumber(m.maxSpeedKmh), o.ID(), formatNumber(o.WeightKg())),
	}
}

// Validate ensures the Motorcycle was built by NewMotorcycle.
func (m *Motorcycle) Validate() error {
	if m == nil {
		return ErrMotorcycleIsNotConstructed
	}
	return m.guard.Validate(ErrMotorcycleIsNotConstructed)
}

func (m *Motorcycle) String() string {
	return fmt.Sprintf("%s, Max speed: %s km/h", m.describe(), formatNumber(m.maxSpeedKmh))
}
