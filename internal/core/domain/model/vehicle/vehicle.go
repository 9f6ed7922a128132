package vehicle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrBrandIsRequired is returned for an empty brand.
	ErrBrandIsRequired = errs.NewValueIsRequiredError("brand")
	// ErrModelIsRequired is returned for an empty model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrRegistrationIsRequired is returned for an empty registration plate.
	ErrRegistrationIsRequired = errs.NewValueIsRequiredError("registration")
	// ErrUnknownKind is returned when parsing an unsupported vehicle kind.
	ErrUnknownKind = errors.New("unknown vehicle kind")
)

// Vehicle is a fleet member able to attempt the delivery of an order.
type Vehicle interface {
	ID() kernel.UUID
	Kind() Kind
	Brand() string
	Model() string
	Registration() string

	// CanCarry evaluates the variant's eligibility rule for a weight in kilograms.
	CanCarry(weightKg float64) bool

	// AttemptDelivery evaluates CanCarry against the order weight and describes the result.
	AttemptDelivery(o *order.Order) Outcome

	Validate() error
	String() string
}

// Outcome is the result of one delivery attempt.
type Outcome struct {
	OrderID   string
	Delivered bool
	Message   string
}

// Kind enumerates the vehicle variants.
type Kind int

const (
	// KindUnknown catches uninitialised Kind values.
	KindUnknown Kind = iota
	// KindTruck identifies a Truck.
	KindTruck
	// KindMotorcycle identifies a Motorcycle.
	KindMotorcycle
)

// String returns "Truck", "Motorcycle" or "Unknown".
func (k Kind) String() string {
	switch k {
	case KindTruck:
		return "Truck"
	case KindMotorcycle:
		return "Motorcycle"
	default:
		return "Unknown"
	}
}

// ParseKind reads a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "truck":
		return KindTruck, nil
	case "motorcycle":
		return KindMotorcycle, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// identity holds the attributes every variant shares. They never change after construction.
type identity struct {
	id           kernel.UUID
	brand        string
	model        string
	registration string
	guard        guard.ConstructorGuard
}

func newIdentity(id kernel.UUID, brand, model, registration string) (identity, error) {
	ident := identity{
		id:           id,
		brand:        brand,
		model:        model,
		registration: registration,
		guard:        guard.NewConstructorGuard(),
	}

	var errID, errBrand, errModel, errRegistration error
	errID = id.Validate()
	if strings.TrimSpace(brand) == "" {
		errBrand = ErrBrandIsRequired
	}
	if strings.TrimSpace(model) == "" {
		errModel = ErrModelIsRequired
	}
	if strings.TrimSpace(registration) == "" {
		errRegistration = ErrRegistrationIsRequired
	}

	if err := errors.Join(errID, errBrand, errModel, errRegistration); err != nil {
		return identity{}, err
	}
	return ident, nil
}

// ID returns the fleet identifier of the vehicle.
func (i identity) ID() kernel.UUID { return i.id }

// Brand returns the manufacturer.
func (i identity) Brand() string { return i.brand }

// Model returns the model name.
func (i identity) Model() string { return i.model }

// Registration returns the registration plate.
func (i identity) Registration() string { return i.registration }

func (i identity) describe() string {
	return fmt.Sprintf("Brand: %s, Model: %s, Registration: %s", i.brand, i.model, i.registration)
}

// positiveFinite validates a variant specific measure such as a capacity or a speed.
func positiveFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is not a positive number", formatNumber(v)))
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
