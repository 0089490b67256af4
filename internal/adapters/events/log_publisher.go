package events

import (
	"context"
	"flight-dashboard/internal/ports"
	"log/slog"
)

// LogPublisher records events in the process log. Used when no broker is configured.
type LogPublisher struct {
	Logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, ev ports.Event) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "dashboard event",
		slog.String("event_id", ev.ID),
		slog.String("kind", string(ev.Kind)),
		slog.Int("bucket_id", ev.BucketID),
		slog.Int("flight_id", ev.FlightID),
		slog.String("departure", ev.Departure.String()),
		slog.String("eta", ev.ETA.String()))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
