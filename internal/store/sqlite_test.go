package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSetGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "myPetData", []byte(`{"name":"Miso"}`)))
	got, err := s.Get(ctx, "myPetData")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"name":"Miso"}`), got)
}

func TestSQLiteOverwrite(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "theme", []byte("light")))
	require.NoError(t, s.Set(ctx, "theme", []byte("dark")))

	got, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, []byte("dark"), got)
}

func TestSQLiteMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "expenseLog", []byte("[]")))
	require.NoError(t, s.Delete(ctx, "expenseLog"))

	_, err := s.Get(ctx, "expenseLog")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, s.Delete(ctx, "expenseLog"))
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "myPetData", []byte("persisted")))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, "myPetData")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func TestGetJSONCorruptValue(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "myPetData", []byte("{not json")))

	var out map[string]any
	err := GetJSON(ctx, s, "myPetData", &out)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetGetJSONRoundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := map[string]int{"money": 500}
	require.NoError(t, SetJSON(ctx, s, "myPetData", in))

	var out map[string]int
	require.NoError(t, GetJSON(ctx, s, "myPetData", &out))
	assert.Equal(t, in, out)
}
