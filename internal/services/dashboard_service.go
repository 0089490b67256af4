package services

import (
	"context"
	"errors"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/platform/obs"
	"flight-dashboard/internal/ports"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Upper bound on a single event publish so a slow broker cannot stall the menu.
const publishTimeout = 3 * time.Second

type InsertRequest struct {
	BucketID  int
	FlightID  int
	Departure domain.Time
	ETA       domain.Time
}

// Result of a point-status query.
type FlightStatus struct {
	BucketID  int
	FlightID  int
	Departure domain.Time
	ETA       domain.Time
}

// One flight plan produced by a window query.
type WindowEntry struct {
	BucketID  int
	FlightID  int
	Departure domain.Time
	ETA       domain.Time
}

// DashboardService owns the in-memory dashboard for the lifetime of a session
// and applies the storage error policy around it.
//
// It is not safe for concurrent use; a session has exactly one caller.
type DashboardService struct {
	dashboard *domain.Dashboard
	store     ports.DashboardStore
	publisher ports.EventPublisher

	now   func() time.Time
	newID func() string
}

func NewDashboardService(store ports.DashboardStore, publisher ports.EventPublisher) *DashboardService {
	return &DashboardService{
		dashboard: domain.NewDashboard(),
		store:     store,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Load replaces the dashboard with the stored snapshot.
//
// On any failure the dashboard is left empty and the error is returned for
// display; it is never fatal. A malformed record discards everything read
// before it.
func (s *DashboardService) Load(ctx context.Context) (err error) {
	defer obs.Time(ctx, "dashboard.Load")(&err)

	s.dashboard = domain.NewDashboard()
	if s.store == nil {
		return fmt.Errorf("load dashboard: %w: no store configured", ports.ErrStorageUnavailable)
	}

	d, err := s.store.Load(ctx)
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrMalformedRecord):
			slog.ErrorContext(ctx, "snapshot has a malformed record, starting empty", slog.Any("err", err))
		case errors.Is(err, ports.ErrStorageUnavailable):
			slog.WarnContext(ctx, "snapshot unavailable, starting empty", slog.Any("err", err))
		default:
			slog.ErrorContext(ctx, "snapshot load failed, starting empty", slog.Any("err", err))
		}
		return fmt.Errorf("load dashboard: %w", err)
	}

	s.dashboard = d
	slog.InfoContext(ctx, "dashboard loaded",
		slog.Int("buckets", d.BucketCount()),
		slog.Int("flight_plans", d.Len()))
	return nil
}

// Save writes the whole dashboard to the store. Failures are logged and
// returned; the in-memory dashboard is unaffected.
func (s *DashboardService) Save(ctx context.Context) (err error) {
	defer obs.Time(ctx, "dashboard.Save")(&err)

	if s.store == nil {
		return fmt.Errorf("save dashboard: %w: no store configured", ports.ErrStorageWrite)
	}

	if err := s.store.Save(ctx, s.dashboard); err != nil {
		slog.ErrorContext(ctx, "snapshot save skipped", slog.Any("err", err))
		return fmt.Errorf("save dashboard: %w", err)
	}

	slog.InfoContext(ctx, "dashboard saved",
		slog.Int("buckets", s.dashboard.BucketCount()),
		slog.Int("flight_plans", s.dashboard.Len()))
	return nil
}

func (s *DashboardService) Insert(ctx context.Context, req InsertRequest) {
	defer obs.Time(ctx, "dashboard.Insert")(nil)

	s.dashboard.Insert(req.BucketID, req.FlightID, req.Departure, req.ETA)
	s.publish(ctx, ports.FlightPlanInserted, req.BucketID, domain.FlightPlan{
		FlightID:  req.FlightID,
		Departure: req.Departure,
		ETA:       req.ETA,
	})
}

// Cancel removes the first flight plan with the given id.
// Reports false, and changes nothing, when no such flight exists.
func (s *DashboardService) Cancel(ctx context.Context, flightID int) bool {
	defer obs.Time(ctx, "dashboard.Cancel")(nil)

	fp, b, ok := s.dashboard.FindFlight(flightID)
	if !ok {
		return false
	}
	bucketID := b.ID

	if !s.dashboard.RemoveFlight(flightID) {
		return false
	}
	s.publish(ctx, ports.FlightPlanCancelled, bucketID, fp)
	return true
}

func (s *DashboardService) Status(ctx context.Context, flightID int) (FlightStatus, bool) {
	defer obs.Time(ctx, "dashboard.Status")(nil)

	fp, b, ok := s.dashboard.FindFlight(flightID)
	if !ok {
		return FlightStatus{}, false
	}
	return FlightStatus{
		BucketID:  b.ID,
		FlightID:  fp.FlightID,
		Departure: fp.Departure,
		ETA:       fp.ETA,
	}, true
}

// InWindow lazily yields every flight plan of every bucket whose span
// overlaps the one-hour window at current, in bucket-then-registry order.
func (s *DashboardService) InWindow(ctx context.Context, current domain.Time) iter.Seq[WindowEntry] {
	return func(yield func(WindowEntry) bool) {
		defer obs.Time(ctx, "dashboard.InWindow")(nil)

		for _, b := range s.dashboard.FindInWindow(current) {
			for _, fp := range b.Flights.All() {
				entry := WindowEntry{
					BucketID:  b.ID,
					FlightID:  fp.FlightID,
					Departure: fp.Departure,
					ETA:       fp.ETA,
				}
				if !yield(entry) {
					return
				}
			}
		}
	}
}

// Snapshot returns the dashboard as persisted records.
func (s *DashboardService) Snapshot() []domain.Record {
	return s.dashboard.Records()
}

func (s *DashboardService) publish(ctx context.Context, kind ports.EventKind, bucketID int, fp domain.FlightPlan) {
	if s.publisher == nil {
		return
	}

	ev := ports.Event{
		ID:        s.newID(),
		Kind:      kind,
		BucketID:  bucketID,
		FlightID:  fp.FlightID,
		Departure: fp.Departure,
		ETA:       fp.ETA,
		At:        s.now().UTC(),
	}

	pctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(pctx, ev); err != nil {
		slog.WarnContext(ctx, "event publish failed",
			slog.String("kind", string(kind)),
			slog.Int("flight_id", fp.FlightID),
			slog.Any("err", err))
	}
}
