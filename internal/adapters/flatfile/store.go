package flatfile

import (
	"context"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/platform/obs"
	"flight-dashboard/internal/ports"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Flat text file implementation of the DashboardStore port.
// One record per line; see FormatRecord.
type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

func (s *Store) Load(ctx context.Context) (_ *domain.Dashboard, err error) {
	defer obs.Time(ctx, "flatfile.Load")(&err)

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("flatfile load: open %q: %w: %w", s.Path, ports.ErrStorageUnavailable, err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("flatfile load %q: %w", s.Path, err)
	}

	d := domain.NewDashboard()
	for _, r := range records {
		slog.DebugContext(ctx, "read flight plan",
			slog.Int("bucket_id", r.BucketID),
			slog.Int("flight_id", r.FlightID),
			slog.String("departure", r.Departure.String()),
			slog.String("eta", r.ETA.String()))
		d.Restore(r)
	}

	return d, nil
}

// Save replaces the file atomically: records go to a temp file in the same
// directory which is then renamed over Path.
func (s *Store) Save(ctx context.Context, d *domain.Dashboard) (err error) {
	defer obs.Time(ctx, "flatfile.Save")(&err)

	if d == nil {
		return fmt.Errorf("flatfile save: %w: dashboard is nil", ports.ErrStorageWrite)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("flatfile save: create dir %q: %w: %w", dir, ports.ErrStorageWrite, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("flatfile save: create temp file: %w: %w", ports.ErrStorageWrite, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	// CreateTemp uses 0600; keep the mode of the snapshot being replaced.
	perm := os.FileMode(0o644)
	if fi, statErr := os.Stat(s.Path); statErr == nil {
		perm = fi.Mode().Perm()
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("flatfile save: chmod temp file: %w: %w", ports.ErrStorageWrite, err)
	}

	if err := Encode(tmp, d.Records()); err != nil {
		tmp.Close()
		return fmt.Errorf("flatfile save: %w: %w", ports.ErrStorageWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("flatfile save: close temp file: %w: %w", ports.ErrStorageWrite, err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("flatfile save: replace %q: %w: %w", s.Path, ports.ErrStorageWrite, err)
	}

	return nil
}
