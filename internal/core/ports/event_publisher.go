package ports

import (
	"context"

	"depot/internal/core/domain/model/depot"
)

// EventPublisher delivers committed domain events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...depot.Event) error
}
