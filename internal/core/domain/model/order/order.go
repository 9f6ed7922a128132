package order

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"depot/internal/pkg/errs"
)

// MaxWeightKg is the heaviest order the depot accepts.
const MaxWeightKg = 100

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrIDIsRequired is returned for an empty order identifier.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrDestinationIsRequired is returned for an empty destination.
	ErrDestinationIsRequired = errs.NewValueIsRequiredError("destination")
)

// Order represents a delivery request handled by the depot.
//
// Order follows these invariants:
//   - The identifier and destination are non-empty
//   - The weight is a positive finite number of kilograms
//   - The status only moves forward (see Status)
//
// The MaxWeightKg ceiling is an intake rule checked with IsValidWeight by the
// callers that accept new orders. The entity itself only rejects weights that
// make no physical sense.
//
// The identifier is supplied by the caller. Uniqueness is checked by the depot
// among the orders it currently tracks.
type Order struct {
	// id is the caller supplied order reference
	id string

	// destination is the delivery address, free text
	destination string

	// weightKg is the order weight in kilograms
	weightKg float64

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a Pending order.
//
// Parameters:
//   - id: caller supplied reference (must be non-empty)
//   - destination: delivery address (must be non-empty)
//   - weightKg: weight in kilograms (must be positive and finite)
//
// All violations are reported at once through errors.Join.
//
//	o, err := order.NewOrder("CMD-42", "12 rue de la Paix", 12.5)
func NewOrder(id string, destination string, weightKg float64) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDestination(destination),
		o.setWeight(weightKg),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// IsValidWeight reports whether weightKg is acceptable for an order: 0 < weightKg <= MaxWeightKg.
// NaN and infinities are rejected.
func IsValidWeight(weightKg float64) bool {
	return weightKg > 0 && weightKg <= MaxWeightKg
}

// Validate ensures the Order was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order reference.
func (o *Order) ID() string {
	return o.id
}

// Destination returns the delivery address.
func (o *Order) Destination() string {
	return o.destination
}

// WeightKg returns the order weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// MarkDelivered moves the order to Delivered. Calling it again keeps it Delivered.
func (o *Order) MarkDelivered() {
	if next, err := o.status.Deliver(); err == nil {
		o.status = next
	}
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	c := *o
	return &c
}

// String renders the order for the depot state report.
func (o *Order) String() string {
	return fmt.Sprintf("Order ID: %s, Destination: %s, Weight: %s kg, Status: %s",
		o.id, o.destination, FormatWeight(o.weightKg), o.status)
}

// FormatWeight renders a weight with the shortest exact representation (1000, 49.9, 1000.5).
func FormatWeight(weightKg float64) string {
	return strconv.FormatFloat(weightKg, 'f', -1, 64)
}

func (o *Order) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	o.id = id
	return nil
}

func (o *Order) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}
	o.destination = destination
	return nil
}

func (o *Order) setWeight(weightKg float64) error {
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightKg", fmt.Errorf("%s is not a positive weight", FormatWeight(weightKg)),
		)
	}
	o.weightKg = weightKg
	return nil
}
