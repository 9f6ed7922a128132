// Package eventlog publishes depot events to a structured logger. It is the
// default publisher when no broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"depot/internal/core/domain/model/depot"
)

// Publisher writes one log record per event.
type Publisher struct {
	logger *slog.Logger
}

// NewPublisher creates a publisher logging on logger.
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "depot-events")}
}

// Publish never fails.
func (p *Publisher) Publish(ctx context.Context, events ...depot.Event) error {
	for _, e := range events {
		attrs := []slog.Attr{
			slog.String("event_id", e.ID.String()),
			slog.String("type", string(e.Type)),
			slog.String("driver_id", e.DriverID.String()),
			slog.Time("occurred_at", e.OccurredAt),
		}
		if e.VehicleID.Validate() == nil {
			attrs = append(attrs, slog.String("vehicle_id", e.VehicleID.String()))
		}
		if e.OrderID != "" {
			attrs = append(attrs, slog.String("order_id", e.OrderID))
		}
		if e.Message != "" {
			attrs = append(attrs, slog.String("message", e.Message))
		}
		p.logger.LogAttrs(ctx, slog.LevelInfo, "depot event", attrs...)
	}
	return nil
}
