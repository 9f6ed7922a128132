package ports

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// DepotReader gives queries shared read access to the depot.
// fn must not keep references to the depot or mutate it.
type DepotReader interface {
	View(ctx context.Context, fn func(d *depot.Depot) error) error
}
