package historystore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleRecord("run-1")))

	got, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, 42, got.Steps)
	require.True(t, got.Survived)
	require.Equal(t, 3, got.Final.CurrentRoomIndex)
}

func TestSQLiteStoreUpsertOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, sampleRecord("run-1")))

	updated := sampleRecord("run-1")
	updated.Steps = 99
	require.NoError(t, store.Save(ctx, updated))

	got, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	require.Equal(t, 99, got.Steps)
}

func TestSQLiteStoreLoadMissingReturnsErrNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Load(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
