package commands

import (
	"context"
	"errors"

	"depot/internal/core/domain/services"
)

// ErrNoPendingOrders is returned when the depot has nothing to dispatch.
var ErrNoPendingOrders = errors.New("no pending orders")

// DispatchPendingOrdersCommandHandler assigns pending orders with the DeliveryDispatcher.
type DispatchPendingOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.DeliveryDispatcher
}

// NewDispatchPendingOrdersCommandHandler creates a handler for automatic dispatch.
func NewDispatchPendingOrdersCommandHandler(uowFactory UoWFactory) DispatchPendingOrdersCommandHandler {
	return DispatchPendingOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDeliveryDispatcher(),
	}
}

// Handle walks the pending orders in insertion order and returns how many were assigned.
// Orders no driver can carry stay pending.
func (h DispatchPendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchPendingOrdersCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d := uow.Depot()
	pending := d.PendingOrders()
	if len(pending) == 0 {
		return 0, ErrNoPendingOrders
	}

	dispatched := 0
	for _, o := range pending {
		_, err := h.dispatcher.Dispatch(d, o.ID())
		if errors.Is(err, services.ErrDriverNotFound) {
			continue
		}
		if err != nil {
			return 0, err
		}
		dispatched++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return dispatched, nil
}
