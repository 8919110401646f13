package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/multipaste/internal/core/recent"
)

func TestRecentStore_MissingFileIsEmpty(t *testing.T) {
	store := NewRecentStore(filepath.Join(t.TempDir(), "recent.json"))

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentStore_Touch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "recent.json")
	store := NewRecentStore(path)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Touch(ctx, "/a.json", base, 0))
	require.NoError(t, store.Touch(ctx, "/b.json", base.Add(time.Minute), 0))
	require.NoError(t, store.Touch(ctx, "/a.json", base.Add(2*time.Minute), 0))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.json", "/b.json"}, recent.Paths(entries))
	assert.Equal(t, 2, entries[0].Launches)
	assert.True(t, entries[0].UsedAt.Equal(base.Add(2*time.Minute)))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRecentStore_TouchPrunes(t *testing.T) {
	ctx := context.Background()
	store := NewRecentStore(filepath.Join(t.TempDir(), "recent.json"))
	now := time.Now()

	for _, p := range []string{"/1", "/2", "/3", "/4"} {
		require.NoError(t, store.Touch(ctx, p, now, 3))
	}

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"/4", "/3", "/2"}, recent.Paths(entries))
}

func TestRecentStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := NewRecentStore(filepath.Join(t.TempDir(), "recent.json"))

	require.NoError(t, store.Touch(ctx, "/a.json", time.Now(), 0))
	require.NoError(t, store.Clear(ctx))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecentStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := NewRecentStore(path).List(context.Background())
	assert.Error(t, err)
}
