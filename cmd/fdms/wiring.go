package main

import (
	"context"
	"flight-dashboard/internal/adapters/events"
	"flight-dashboard/internal/adapters/flatfile"
	"flight-dashboard/internal/adapters/redisstore"
	"flight-dashboard/internal/adapters/repositories"
	"flight-dashboard/internal/config"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/platform/db"
	"flight-dashboard/internal/ports"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// unavailableStore stands in for a backend that could not be opened, so the
// session still starts empty and reports the failure again on save.
type unavailableStore struct{ err error }

func (s unavailableStore) Load(context.Context) (*domain.Dashboard, error) {
	return nil, fmt.Errorf("%w: %w", ports.ErrStorageUnavailable, s.err)
}

func (s unavailableStore) Save(context.Context, *domain.Dashboard) error {
	return fmt.Errorf("%w: %w", ports.ErrStorageWrite, s.err)
}

// Open the configured DashboardStore. The returned func releases its connections.
func openStore(ctx context.Context, cfg config.Config) (ports.DashboardStore, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.BackendFile:
		return flatfile.NewStore(cfg.DataFile), noop, nil

	case config.BackendSqlite:
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, noop, err
		}
		if err := repositories.InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("open store: %w", err)
		}
		return repositories.NewSqliteDashboardStore(conn), func() { conn.Close() }, nil

	case config.BackendPostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := repositories.InitSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("open store: %w", err)
		}
		return repositories.NewPostgresDashboardStore(conn), func() { conn.Close() }, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("open store: ping redis %s: %w", cfg.RedisAddr, err)
		}
		return redisstore.NewStore(client, cfg.RedisKey), func() { client.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("open store: unknown backend %q", cfg.StoreBackend)
	}
}

// Like openStore, but a backend that cannot be opened degrades to an
// unavailable store instead of failing the session.
func openSessionStore(ctx context.Context, cfg config.Config) (ports.DashboardStore, func()) {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		slog.ErrorContext(ctx, "store unavailable",
			slog.String("backend", cfg.StoreBackend),
			slog.Any("err", err))
		return unavailableStore{err: err}, closeStore
	}
	return store, closeStore
}

type publisher interface {
	ports.EventPublisher
	Close() error
}

func newPublisher(cfg config.Config, logger *slog.Logger) publisher {
	if cfg.KafkaBroker != "" {
		return events.NewKafkaPublisher(cfg.KafkaBroker, cfg.KafkaTopic)
	}
	return events.NewLogPublisher(logger)
}
