package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrDescribeDepotStateQueryIsNotConstructed = errors.New(
	"DescribeDepotStateQuery must be created via NewDescribeDepotStateQuery constructor",
)

// DescribeDepotStateQuery renders the depot as the text report of Depot.DescribeState.
type DescribeDepotStateQuery struct {
	guard guard.ConstructorGuard
}

// NewDescribeDepotStateQuery creates the parameterless query.
func NewDescribeDepotStateQuery() DescribeDepotStateQuery {
	return DescribeDepotStateQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q DescribeDepotStateQuery) Validate() error {
	return q.guard.Validate(ErrDescribeDepotStateQueryIsNotConstructed)
}
