package commands

import (
	"errors"
	"strings"

	"depot/internal/core/domain/model/order"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrCreateOrderCommandIsNotConstructed is returned when validating a zero-value command.
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	// ErrOrderIDIsRequired is returned for an empty order reference.
	ErrOrderIDIsRequired = errors.New("order id is required")
	// ErrDestinationIsRequired is returned for an empty destination.
	ErrDestinationIsRequired = errors.New("destination is required")
)

// CreateOrderCommand represents a request to add a pending order to the depot.
// The weight must satisfy order.IsValidWeight.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("CMD-42", "12 rue de la Paix", 12.5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	destination string
	weightKg    float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// All violations are returned together.
func NewCreateOrderCommand(orderID, destination string, weightKg float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDestination(destination),
		orderCommand.setWeight(weightKg),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the caller supplied order reference.
func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

// Destination returns the delivery address.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// WeightKg returns the order weight in kilograms.
func (c CreateOrderCommand) WeightKg() float64 {
	return c.weightKg
}

func (c *CreateOrderCommand) setOrderID(orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if strings.TrimSpace(destination) == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setWeight(weightKg float64) error {
	if !order.IsValidWeight(weightKg) {
		return errs.NewValueIsOutOfRangeError("weightKg", weightKg, 0, order.MaxWeightKg)
	}

	c.weightKg = weightKg
	return nil
}
