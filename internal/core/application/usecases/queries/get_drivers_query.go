package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves the registered drivers with their vehicle and queue, in registration order.
//
// Example:
//
//	handler := NewGetDriversQueryHandler(reader)
//	drivers, err := handler.Handle(ctx, NewGetDriversQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve drivers: %w", err)
//	}
//
//	for _, d := range drivers {
//	    fmt.Printf("%s has %d orders\n", d.Name, len(d.PendingOrders))
//	}
type GetDriversQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates the parameterless query.
func NewGetDriversQuery() GetDriversQuery {
	return GetDriversQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}
