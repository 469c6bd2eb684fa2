package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCommitAndCurrent(t *testing.T) {
	h := NewHistory(0)
	r1 := FromString(nil, "a")
	snap := h.Commit(r1, "first")

	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snap.ID, cur.ID)
	assert.Equal(t, "first", cur.Label)
	assert.Equal(t, 1, h.Len())
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(0)
	r1 := FromString(nil, "a")
	r2 := r1.PushBack([]byte("b"))
	h.Commit(r1, "one")
	h.Commit(r2, "two")

	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	prev, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, "one", prev.Label)
	assert.True(t, h.CanRedo())

	next, ok := h.Redo()
	require.True(t, ok)
	assert.Equal(t, "two", next.Label)
}

func TestHistoryCommitAfterUndoDiscardsRedoTail(t *testing.T) {
	h := NewHistory(0)
	h.Commit(FromString(nil, "a"), "one")
	h.Commit(FromString(nil, "b"), "two")
	h.Undo()

	h.Commit(FromString(nil, "c"), "three")
	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())

	cur, _ := h.Current()
	assert.Equal(t, "three", cur.Label)
}

func TestHistoryPruneBoundsSize(t *testing.T) {
	h := NewHistory(2)
	h.Commit(FromString(nil, "a"), "one")
	h.Commit(FromString(nil, "b"), "two")
	h.Commit(FromString(nil, "c"), "three")

	assert.Equal(t, 2, h.Len())
	cur, _ := h.Current()
	assert.Equal(t, "three", cur.Label)
}

func TestHistoryByID(t *testing.T) {
	h := NewHistory(0)
	snap := h.Commit(FromString(nil, "a"), "one")

	found, ok := h.ByID(snap.ID)
	require.True(t, ok)
	assert.Equal(t, snap.ID, found.ID)
}
