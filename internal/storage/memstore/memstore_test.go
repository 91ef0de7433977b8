package memstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatdb/internal/sql"
	"flatdb/internal/storage"
)

// TestMemstoreSaveLoad verifies that a saved table can be read back and
// that the store hands out copies.
func TestMemstoreSaveLoad(t *testing.T) {
	store := New()

	tbl := sql.NewTable([]sql.Column{
		{Name: "id", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeString},
	})
	tbl.Rows = append(tbl.Rows,
		sql.Row{sql.IntValue(1), sql.StringValue("Alice")},
		sql.Row{sql.IntValue(2), sql.StringValue("Bob")},
	)

	require.NoError(t, store.Save("users", tbl))
	assert.True(t, store.Exists("users"))

	got, err := store.Load("users")
	require.NoError(t, err)
	assert.Equal(t, tbl, got)

	// Mutating the loaded copy must not change what is stored.
	got.Rows[0][1] = sql.StringValue("Mallory")
	again, err := store.Load("users")
	require.NoError(t, err)
	assert.Equal(t, "Alice", again.Rows[0][1].S)
}

func TestMemstoreNotFound(t *testing.T) {
	store := New()

	assert.False(t, store.Exists("nope"))

	_, err := store.Load("nope")
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	err = store.Delete("nope")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestMemstoreDeleteAndList(t *testing.T) {
	store := New()
	cols := []sql.Column{{Name: "a", Type: sql.TypeInt}}

	require.NoError(t, store.Save("b", sql.NewTable(cols)))
	require.NoError(t, store.Save("a", sql.NewTable(cols)))

	names, err := store.ListTables()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, store.Delete("a"))
	names, err = store.ListTables()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestMemstoreRejectsBadRows(t *testing.T) {
	store := New()
	tbl := sql.NewTable([]sql.Column{{Name: "a", Type: sql.TypeInt}})
	tbl.Rows = append(tbl.Rows, sql.Row{sql.IntValue(1), sql.IntValue(2)})

	assert.Error(t, store.Save("t", tbl))
	assert.ErrorIs(t, store.Save("bad/name", sql.NewTable(nil)), storage.ErrInvalidTableName)
}
