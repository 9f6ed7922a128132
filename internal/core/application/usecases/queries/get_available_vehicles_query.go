package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
	"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
)

// GetAvailableVehiclesQuery retrieves the vehicles nobody drives yet, in insertion order.
type GetAvailableVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableVehiclesQuery creates the parameterless query.
func NewGetAvailableVehiclesQuery() GetAvailableVehiclesQuery {
	return GetAvailableVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}
