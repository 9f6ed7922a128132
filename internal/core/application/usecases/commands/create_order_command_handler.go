package commands

import (
	"context"

	"depot/internal/core/domain/model/order"
)

// CreateOrderCommandHandler adds new orders to the pending pool.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("CMD-42", "12 rue de la Paix", 12.5)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// the order now waits for a driver
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order in Pending status and adds it to the depot.
// It fails with depot.ErrOrderAlreadyTracked when the reference is in use.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Destination(), cmd.WeightKg())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.Depot().AddPendingOrder(o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
