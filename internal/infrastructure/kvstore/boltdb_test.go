package kvstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), "taskdeck")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_PutGetDelete(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Get("missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, store.Put("theme", "ocean"))

	value, found, err := store.Get("theme")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "ocean", value)

	require.NoError(t, store.Delete("theme"))
	_, found, err = store.Get("theme")
	require.NoError(t, err)
	require.False(t, found)

	// Deleting again is not an error.
	require.NoError(t, store.Delete("theme"))
}

func TestStore_KeysPrefix(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("weather_paris", "a"))
	require.NoError(t, store.Put("weather_oslo", "b"))
	require.NoError(t, store.Put("tasks", "c"))

	keys, err := store.Keys("weather_")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"weather_paris", "weather_oslo"}, keys)

	size, err := store.Size()
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestStore_UpdateRollsBackOnError(t *testing.T) {
	store := openTestStore(t)
	boom := errors.New("boom")

	err := store.Update(func(tx *Tx) error {
		require.NoError(t, tx.Put("tasks", "[]"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found, err := store.Get("tasks")
	require.NoError(t, err)
	require.False(t, found)
}
