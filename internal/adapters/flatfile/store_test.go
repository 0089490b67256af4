package flatfile

import (
	"context"
	"flight-dashboard/internal/domain"
	"flight-dashboard/internal/ports"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "plans.txt")
	store := NewStore(path)

	d := domain.NewDashboard()
	d.Insert(1, 101, domain.NewTime(8, 0), domain.NewTime(9, 0))
	d.Insert(1, 102, domain.NewTime(8, 0), domain.NewTime(9, 45))
	d.Insert(2, 201, domain.NewTime(6, 15), domain.NewTime(7, 20))
	d.RemoveFlight(102) // span of bucket 1 stays 09:00-09:45

	require.NoError(t, store.Save(ctx, d))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, d.Records(), loaded.Records())

	b, ok := loaded.Bucket(1)
	require.True(t, ok)
	assert.Equal(t, domain.NewTime(9, 45), b.EndETA, "stored span is merged back in")
}

func TestStoreSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "plans.txt"))

	first := domain.NewDashboard()
	first.Insert(1, 1, domain.NewTime(8, 0), domain.NewTime(9, 0))
	first.Insert(1, 2, domain.NewTime(8, 0), domain.NewTime(9, 0))
	require.NoError(t, store.Save(ctx, first))

	second := domain.NewDashboard()
	second.Insert(4, 9, domain.NewTime(10, 0), domain.NewTime(11, 0))
	require.NoError(t, store.Save(ctx, second))

	b, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Equal(t, "4 9 10 00 11 00 11 00 11 00\n", string(b))

	entries, err := os.ReadDir(filepath.Dir(store.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.txt"))

	d, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrStorageUnavailable)
	assert.Nil(t, d)
}

func TestStoreLoadMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.txt")
	content := "1 101 8 00 09 00 09 00 09 00\n1 102 8 30 09 30 09 00 09\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	d, err := NewStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrMalformedRecord)
	assert.Nil(t, d, "no partial dashboard is returned")
}

func TestStoreSaveUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	store := NewStore(filepath.Join(blocker, "plans.txt"))
	err := store.Save(context.Background(), domain.NewDashboard())
	assert.ErrorIs(t, err, ports.ErrStorageWrite)
}

func TestStoreSaveFileMode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	fresh := NewStore(filepath.Join(dir, "fresh.txt"))
	require.NoError(t, fresh.Save(ctx, domain.NewDashboard()))
	fi, err := os.Stat(fresh.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())

	existing := NewStore(filepath.Join(dir, "existing.txt"))
	require.NoError(t, os.WriteFile(existing.Path, nil, 0o644))
	require.NoError(t, os.Chmod(existing.Path, 0o640))
	require.NoError(t, existing.Save(ctx, domain.NewDashboard()))
	fi, err = os.Stat(existing.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), fi.Mode().Perm(), "mode of the replaced snapshot is kept")
}
