package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

// GetPendingOrdersQueryHandler lists the orders still waiting in the depot.
// Orders queued on a driver are reported with the driver, see GetDriversQueryHandler.
type GetPendingOrdersQueryHandler struct {
	reader ports.DepotReader
}

// NewGetPendingOrdersQueryHandler creates the handler.
func NewGetPendingOrdersQueryHandler(reader ports.DepotReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{reader: reader}
}

func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orders []OrderResponse
	err := h.reader.View(ctx, func(d *depot.Depot) error {
		orders = toOrderResponses(d.PendingOrders())
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
