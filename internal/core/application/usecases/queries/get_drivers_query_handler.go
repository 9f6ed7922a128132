package queries

import (
	"context"

	"depot/internal/core/domain/model/depot"
	"depot/internal/core/ports"
)

// GetDriversQueryHandler lists the registered drivers.
type GetDriversQueryHandler struct {
	reader ports.DepotReader
}

// NewGetDriversQueryHandler creates the handler.
func NewGetDriversQueryHandler(reader ports.DepotReader) GetDriversQueryHandler {
	return GetDriversQueryHandler{reader: reader}
}

// Handle copies every driver, its vehicle and its queue into read models.
func (h GetDriversQueryHandler) Handle(ctx context.Context, query GetDriversQuery) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers := make([]DriverResponse, 0)
	err := h.reader.View(ctx, func(d *depot.Depot) error {
		for _, dr := range d.Drivers() {
			drivers = append(drivers, toDriverResponse(dr))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return drivers, nil
}
