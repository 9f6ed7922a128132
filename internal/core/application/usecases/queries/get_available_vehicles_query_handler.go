package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

// GetAvailableVehiclesQueryHandler lists the available pool.
type GetAvailableVehiclesQueryHandler struct {
	reader ports.DepotReader
}

// NewGetAvailableVehiclesQueryHandler creates the handler.
func NewGetAvailableVehiclesQueryHandler(reader ports.DepotReader) GetAvailableVehiclesQueryHandler {
	return GetAvailableVehiclesQueryHandler{reader: reader}
}

// Handle returns an empty, non-nil slice when no vehicle is available.
func (h GetAvailableVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableVehiclesQuery,
) ([]VehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]VehicleResponse, 0)
	err := h.reader.View(ctx, func(d *depot.Depot) error {
		for _, v := range d.AvailableVehicles() {
			vehicles = append(vehicles, toVehicleResponse(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vehicles, nil
}
