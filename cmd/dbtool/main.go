package main

import (
	"context"
	"database/sql"
	"errors"
	"flight-dashboard/internal/adapters/flatfile"
	"flight-dashboard/internal/adapters/repositories"
	"flight-dashboard/internal/config"
	"flight-dashboard/internal/platform/db"
	"flight-dashboard/internal/platform/logging"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("dbtool failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dotenvErr := config.LoadDotEnv()

	logger, closer, err := logging.New(logging.Options{
		Level: config.Get("LOG_LEVEL", "info"),
		File:  "-",
	})
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)

	if dotenvErr != nil {
		slog.Info("No .env file found (using environment variables)")
	}

	backend, err := sqlBackend(config.Get("STORE_BACKEND", ""))
	if err != nil {
		return err
	}

	conn, store, err := open(backend)
	if err != nil {
		return err
	}
	defer conn.Close()

	seedPath := config.Get("SEED_PATH", "data/flightplans.txt")
	return initAndSeed(ctx, conn, store, seedPath)
}

// Only the SQL backends have a schema to manage.
func sqlBackend(raw string) (string, error) {
	backend := strings.ToLower(strings.TrimSpace(raw))
	switch backend {
	case config.BackendSqlite, config.BackendPostgres:
		return backend, nil
	case "":
		return "", errors.New("STORE_BACKEND is required (sqlite or postgres)")
	default:
		return "", fmt.Errorf("STORE_BACKEND %q has no SQL schema (want sqlite or postgres)", raw)
	}
}

func open(backend string) (*sql.DB, *repositories.SQLDashboardStore, error) {
	if backend == config.BackendPostgres {
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			return nil, nil, errors.New("DATABASE_URL is required for the postgres backend")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return conn, repositories.NewPostgresDashboardStore(conn), nil
	}

	conn, err := db.OpenSqlite(config.Get("DB_PATH", "data/fdms.db"))
	if err != nil {
		return nil, nil, err
	}
	return conn, repositories.NewSqliteDashboardStore(conn), nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, store *repositories.SQLDashboardStore, seedPath string) error {
	slog.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	slog.Info("Schema ready.")

	if _, err := os.Stat(seedPath); err != nil {
		slog.Info("No seed snapshot, leaving flight_plans as is", slog.String("seed_path", seedPath))
		return nil
	}

	slog.Info("Seeding database...", slog.String("seed_path", seedPath))
	d, err := flatfile.NewStore(seedPath).Load(ctx)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, d); err != nil {
		return err
	}
	slog.Info("Seeding complete.", slog.Int("flight_plans", d.Len()), slog.Int("buckets", d.BucketCount()))

	return nil
}
