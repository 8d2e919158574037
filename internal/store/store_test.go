package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mattForge/OzoneForgePlanner/internal/shared/apperror"
)

type thing struct {
	ID    string
	Value int
}

func (t thing) EntityID() string { return t.ID }

func TestCollection_InsertAndGet(t *testing.T) {
	col := NewCollection[thing]()

	assert.NoError(t, col.Insert(thing{ID: "a", Value: 1}))
	assert.NoError(t, col.Insert(thing{ID: "b", Value: 2}))

	got, err := col.Get("a")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.Value)

	_, err = col.Get("missing")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCollection_Insert_DuplicateConflicts(t *testing.T) {
	col := NewCollection[thing]()

	assert.NoError(t, col.Insert(thing{ID: "a"}))
	assert.ErrorIs(t, col.Insert(thing{ID: "a"}), apperror.ErrConflict)
	assert.Equal(t, 1, col.Len())
}

func TestCollection_List_PreservesInsertionOrder(t *testing.T) {
	col := NewCollection[thing]()
	for i, id := range []string{"x", "y", "z"} {
		assert.NoError(t, col.Insert(thing{ID: id, Value: i}))
	}

	all := col.List()
	assert.Len(t, all, 3)
	assert.Equal(t, "x", all[0].ID)
	assert.Equal(t, "z", all[2].ID)

	even := col.List(func(e thing) bool { return e.Value%2 == 0 })
	assert.Len(t, even, 2)
}

func TestCollection_InsertFront_NewestFirst(t *testing.T) {
	col := NewCollection[thing]()

	assert.NoError(t, col.InsertFront(thing{ID: "old"}))
	assert.NoError(t, col.InsertFront(thing{ID: "new"}))

	all := col.List()
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "old", all[1].ID)

	got, err := col.Get("old")
	assert.NoError(t, err)
	assert.Equal(t, "old", got.ID)
}

func TestCollection_Update(t *testing.T) {
	col := NewCollection[thing]()
	assert.NoError(t, col.Insert(thing{ID: "a", Value: 1}))

	updated, err := col.Update("a", func(e thing) thing {
		e.Value = 42
		return e
	})
	assert.NoError(t, err)
	assert.Equal(t, 42, updated.Value)

	// Missing ids signal NotFound rather than silently no-opping.
	_, err = col.Update("missing", func(e thing) thing { return e })
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// Mutating the id inside the closure is rejected.
	_, err = col.Update("a", func(e thing) thing {
		e.ID = "b"
		return e
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestCollection_Remove_Idempotent(t *testing.T) {
	col := NewCollection[thing]()
	assert.NoError(t, col.Insert(thing{ID: "a"}))
	assert.NoError(t, col.Insert(thing{ID: "b"}))

	col.Remove("a")
	col.Remove("a")
	col.Remove("never-existed")

	assert.Equal(t, 1, col.Len())
	got, err := col.Get("b")
	assert.NoError(t, err)
	assert.Equal(t, "b", got.ID)
}

func TestNewID_CarriesPrefix(t *testing.T) {
	id := NewID("user")
	assert.Contains(t, id, "user-")
	assert.NotEqual(t, id, NewID("user"))
}
