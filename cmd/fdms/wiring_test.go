package main

import (
	"context"
	"flight-dashboard/internal/adapters/events"
	"flight-dashboard/internal/adapters/flatfile"
	"flight-dashboard/internal/adapters/redisstore"
	"flight-dashboard/internal/adapters/repositories"
	"flight-dashboard/internal/config"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/ports"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStoreBackends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("file", func(t *testing.T) {
		store, closeStore, err := openStore(ctx, config.Config{
			StoreBackend: config.BackendFile,
			DataFile:     filepath.Join(dir, "plans.txt"),
		})
		require.NoError(t, err)
		defer closeStore()
		assert.IsType(t, &flatfile.Store{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		store, closeStore, err := openStore(ctx, config.Config{
			StoreBackend: config.BackendSqlite,
			DBPath:       filepath.Join(dir, "db", "fdms.db"),
		})
		require.NoError(t, err)
		defer closeStore()
		require.IsType(t, &repositories.SQLDashboardStore{}, store)

		d := domain.NewDashboard()
		d.Insert(1, 101, domain.NewTime(8, 0), domain.NewTime(9, 0))
		require.NoError(t, store.Save(ctx, d))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, d.Records(), loaded.Records())
	})

	t.Run("redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		store, closeStore, err := openStore(ctx, config.Config{
			StoreBackend: config.BackendRedis,
			RedisAddr:    mr.Addr(),
			RedisKey:     "fdms:test",
		})
		require.NoError(t, err)
		defer closeStore()
		assert.IsType(t, &redisstore.Store{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		_, closeStore, err := openStore(ctx, config.Config{StoreBackend: "tape"})
		defer closeStore()
		assert.ErrorContains(t, err, "unknown backend")
	})
}

func TestOpenSessionStoreDegrades(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	store, closeStore := openSessionStore(ctx, config.Config{
		StoreBackend: config.BackendRedis,
		RedisAddr:    addr,
		RedisKey:     "fdms:test",
	})
	defer closeStore()

	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrStorageUnavailable)
	assert.ErrorIs(t, store.Save(ctx, domain.NewDashboard()), ports.ErrStorageWrite)
}

func TestNewPublisherWithoutBrokerLogs(t *testing.T) {
	pub := newPublisher(config.Config{}, slog.Default())
	assert.IsType(t, &events.LogPublisher{}, pub)
	assert.NoError(t, pub.Close())
}
