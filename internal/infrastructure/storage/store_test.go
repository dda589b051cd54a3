package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReadWriteDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	// Absent key: ok=false, no error.
	value, ok, err := store.Read(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	require.NoError(t, store.Write(ctx, "k", `{"a":1}`))
	value, ok, err = store.Read(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, value)

	// Last write wins.
	require.NoError(t, store.Write(ctx, "k", `{"a":2}`))
	value, _, _ = store.Read(ctx, "k")
	assert.Equal(t, `{"a":2}`, value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, ok, err = store.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestDisabledStoreNeverPersists(t *testing.T) {
	ctx := context.Background()
	store := NewDisabledStore()

	require.NoError(t, store.Write(ctx, "k", "v"))

	_, ok, err := store.Read(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestReadJSONAbsentKeyLeavesDefault(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	items := []string{"sentinel"}
	require.NoError(t, ReadJSON(ctx, store, "missing", &items))
	assert.Equal(t, []string{"sentinel"}, items)
}

func TestReadJSONRejectsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Write(ctx, "bad", "{not json"))

	var dest map[string]int
	err := ReadJSON(ctx, store, "bad", &dest)
	assert.Error(t, err)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, WriteJSON(ctx, store, "r", record{Name: "x", Count: 3}))

	var got record
	require.NoError(t, ReadJSON(ctx, store, "r", &got))
	assert.Equal(t, record{Name: "x", Count: 3}, got)
}
