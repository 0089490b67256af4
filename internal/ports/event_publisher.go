package ports

import (
	"context"
	"flight-dashboard/internal/domain"
	"time"
)

type EventKind string

const (
	FlightPlanInserted  EventKind = "flightplan.inserted"
	FlightPlanCancelled EventKind = "flightplan.cancelled"
)

// A change made to the dashboard.
type Event struct {
	ID        string      `json:"id"`
	Kind      EventKind   `json:"kind"`
	BucketID  int         `json:"bucket_id"`
	FlightID  int         `json:"flight_id"`
	Departure domain.Time `json:"departure"`
	ETA       domain.Time `json:"eta"`
	At        time.Time   `json:"at"`
}

// Contract for announcing dashboard changes to other systems.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
