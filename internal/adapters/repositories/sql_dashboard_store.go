package repositories

import (
	"context"
	"database/sql"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/platform/obs"
	"flight-dashboard/internal/ports"
	"fmt"
)

// Dialect selects the bind-parameter style of the underlying driver.
type Dialect int

const (
	// SQLite (modernc.org/sqlite): ? placeholders.
	Sqlite Dialect = iota
	// Postgres (pgx stdlib): $n placeholders.
	Postgres
)

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// SQL-backed implementation of the DashboardStore port.
// The snapshot is the flight_plans table; seq keeps bucket-then-registry order.
type SQLDashboardStore struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSqliteDashboardStore(db *sql.DB) *SQLDashboardStore {
	return &SQLDashboardStore{DB: db, Dialect: Sqlite}
}

func NewPostgresDashboardStore(db *sql.DB) *SQLDashboardStore {
	return &SQLDashboardStore{DB: db, Dialect: Postgres}
}

func (s *SQLDashboardStore) insertQuery() string {
	if s.Dialect == Postgres {
		return `
	INSERT INTO flight_plans (
		seq, bucket_id, flight_id,
		dep_hh, dep_mm, eta_hh, eta_mm,
		start_hh, start_mm, end_hh, end_mm
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	}
	return `
	INSERT INTO flight_plans (
		seq, bucket_id, flight_id,
		dep_hh, dep_mm, eta_hh, eta_mm,
		start_hh, start_mm, end_hh, end_mm
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
}

// Load the stored snapshot in seq order.
func (s *SQLDashboardStore) Load(ctx context.Context) (_ *domain.Dashboard, err error) {
	defer obs.Time(ctx, s.Dialect.String()+".Load")(&err)

	if s.DB == nil {
		return nil, fmt.Errorf("sql dashboard store: %w: DB is nil", ports.ErrStorageUnavailable)
	}

	query := `
	SELECT
		bucket_id, flight_id,
		dep_hh, dep_mm, eta_hh, eta_mm,
		start_hh, start_mm, end_hh, end_mm
	FROM flight_plans
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: query flight_plans table: %w: %w", ports.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	d := domain.NewDashboard()
	for rows.Next() {
		var r domain.Record
		err := rows.Scan(
			&r.BucketID, &r.FlightID,
			&r.Departure.Hours, &r.Departure.Minutes,
			&r.ETA.Hours, &r.ETA.Minutes,
			&r.StartETA.Hours, &r.StartETA.Minutes,
			&r.EndETA.Hours, &r.EndETA.Minutes,
		)
		if err != nil {
			return nil, fmt.Errorf("load dashboard: scan row: %w: %w", ports.ErrMalformedRecord, err)
		}
		d.Restore(r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load dashboard: row iteration: %w: %w", ports.ErrStorageUnavailable, err)
	}

	return d, nil
}

// Replace the stored snapshot in a single transaction.
func (s *SQLDashboardStore) Save(ctx context.Context, d *domain.Dashboard) (err error) {
	defer obs.Time(ctx, s.Dialect.String()+".Save")(&err)

	if s.DB == nil {
		return fmt.Errorf("sql dashboard store: %w: DB is nil", ports.ErrStorageWrite)
	}
	if d == nil {
		return fmt.Errorf("save dashboard: %w: dashboard is nil", ports.ErrStorageWrite)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save dashboard: begin tx: %w: %w", ports.ErrStorageWrite, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM flight_plans;`); err != nil {
		return fmt.Errorf("save dashboard: clear flight_plans: %w: %w", ports.ErrStorageWrite, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.insertQuery())
	if err != nil {
		return fmt.Errorf("save dashboard: prepare insert: %w: %w", ports.ErrStorageWrite, err)
	}
	defer stmt.Close()

	for i, r := range d.Records() {
		_, err := stmt.ExecContext(ctx,
			i+1, r.BucketID, r.FlightID,
			r.Departure.Hours, r.Departure.Minutes,
			r.ETA.Hours, r.ETA.Minutes,
			r.StartETA.Hours, r.StartETA.Minutes,
			r.EndETA.Hours, r.EndETA.Minutes,
		)
		if err != nil {
			return fmt.Errorf("save dashboard: insert flight_id=%d: %w: %w", r.FlightID, ports.ErrStorageWrite, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save dashboard: commit tx: %w: %w", ports.ErrStorageWrite, err)
	}

	return nil
}
