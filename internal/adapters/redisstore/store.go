package redisstore

import (
	"context"
	"errors"
	"flight-dashboard/internal/adapters/flatfile"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/platform/obs"
	"flight-dashboard/internal/ports"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the DashboardStore port.
// The snapshot is a list under Key holding one flat-file line per flight plan.
type Store struct {
	Client *redis.Client
	Key    string
}

func NewStore(client *redis.Client, key string) *Store {
	return &Store{Client: client, Key: key}
}

func (s *Store) Load(ctx context.Context) (_ *domain.Dashboard, err error) {
	defer obs.Time(ctx, "redis.Load")(&err)

	if s.Client == nil {
		return nil, fmt.Errorf("redis store: %w: client is nil", ports.ErrStorageUnavailable)
	}

	lines, err := s.Client.LRange(ctx, s.Key, 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("redis load: lrange %q: %w: %w", s.Key, ports.ErrStorageUnavailable, err)
	}

	d := domain.NewDashboard()
	for i, line := range lines {
		r, err := flatfile.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("redis load: %q[%d]: %w", s.Key, i, err)
		}
		d.Restore(r)
	}

	return d, nil
}

// Replace the list in one MULTI/EXEC.
func (s *Store) Save(ctx context.Context, d *domain.Dashboard) (err error) {
	defer obs.Time(ctx, "redis.Save")(&err)

	if s.Client == nil {
		return fmt.Errorf("redis store: %w: client is nil", ports.ErrStorageWrite)
	}
	if d == nil {
		return fmt.Errorf("redis save: %w: dashboard is nil", ports.ErrStorageWrite)
	}

	records := d.Records()
	lines := make([]any, 0, len(records))
	for _, r := range records {
		lines = append(lines, flatfile.FormatRecord(r))
	}

	pipe := s.Client.TxPipeline()
	pipe.Del(ctx, s.Key)
	if len(lines) > 0 {
		pipe.RPush(ctx, s.Key, lines...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis save: exec %q: %w: %w", s.Key, ports.ErrStorageWrite, err)
	}

	return nil
}
