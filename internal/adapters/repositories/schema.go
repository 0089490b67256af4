package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the flight_plans schema. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createFlightPlansQuery := `
	CREATE TABLE IF NOT EXISTS flight_plans (
		seq INTEGER PRIMARY KEY,
		bucket_id INTEGER NOT NULL,
		flight_id INTEGER NOT NULL,
		dep_hh INTEGER NOT NULL,
		dep_mm INTEGER NOT NULL,
		eta_hh INTEGER NOT NULL,
		eta_mm INTEGER NOT NULL,
		start_hh INTEGER NOT NULL,
		start_mm INTEGER NOT NULL,
		end_hh INTEGER NOT NULL,
		end_mm INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_flight_plans_flight_id
	ON flight_plans(flight_id);
	`

	statements := []string{
		createFlightPlansQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
