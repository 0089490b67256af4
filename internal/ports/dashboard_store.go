package ports

import (
	"context"
	"flight-dashboard/internal/domain"
)

// Port: a boundary for persisting the dashboard between runs.
// Stores work on whole snapshots; Save replaces whatever was stored before.
type DashboardStore interface {
	// Load the stored snapshot. A snapshot that cannot be opened returns
	// ErrStorageUnavailable; a bad record returns ErrMalformedRecord.
	Load(ctx context.Context) (*domain.Dashboard, error)
	// Overwrite the stored snapshot. Failures wrap ErrStorageWrite.
	Save(ctx context.Context, d *domain.Dashboard) error
}
