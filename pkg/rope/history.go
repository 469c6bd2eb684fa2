package rope

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// history.go implements a linear log of immutable snapshots (a new
// commit discards any redo entries, and a size bound drops the oldest). Because every *Rope is already persistent, undo/redo does
// not need its own transaction-inversion machinery: each snapshot IS
// a complete, shareable version of the document, so "undo" is just
// "go back to pointing at an earlier snapshot" rather than replaying
// an inverse edit.

// Snapshot is one recorded state of a document: an immutable *Rope,
// tagged with a unique ID and the time it was recorded.
type Snapshot struct {
	ID        uuid.UUID
	Rope      *Rope
	Label     string
	CreatedAt time.Time
}

// History is a linear stack of Snapshots with a movable cursor, giving
// undo/redo over whichever sequence of edits produced each snapshot.
// Committing a new snapshot while the cursor is behind the end
// discards every snapshot after the cursor, the same way a typical
// editor's undo stack behaves once new edits are made after an undo.
type History struct {
	mu      sync.RWMutex
	entries []*Snapshot
	cursor  int
	maxSize int
}

// NewHistory returns an empty History. maxSize bounds how many
// snapshots are retained; 0 means unlimited.
func NewHistory(maxSize int) *History {
	return &History{cursor: -1, maxSize: maxSize}
}

// Commit records r as the new current snapshot, discarding any
// snapshots after the current cursor position.
func (h *History) Commit(r *Rope, label string) *Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	snap := &Snapshot{ID: uuid.New(), Rope: r, Label: label, CreatedAt: time.Now()}
	h.entries = append(h.entries[:h.cursor+1], snap)
	h.cursor++
	h.prune()
	return snap
}

func (h *History) prune() {
	if h.maxSize <= 0 || len(h.entries) <= h.maxSize {
		return
	}
	drop := len(h.entries) - h.maxSize
	h.entries = h.entries[drop:]
	h.cursor -= drop
	if h.cursor < 0 {
		h.cursor = 0
	}
}

// CanUndo reports whether there is an earlier snapshot to move to.
func (h *History) CanUndo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor > 0
}

// CanRedo reports whether there is a later snapshot to move to.
func (h *History) CanRedo() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

// Undo moves the cursor back one snapshot and returns it.
func (h *History) Undo() (*Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo moves the cursor forward one snapshot and returns it.
func (h *History) Redo() (*Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cursor < 0 || h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

// Current returns the snapshot at the cursor, if any exist yet.
func (h *History) Current() (*Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return nil, false
	}
	return h.entries[h.cursor], true
}

// Len returns the number of snapshots currently retained.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// ByID returns the snapshot with the given ID, if it is still retained.
func (h *History) ByID(id uuid.UUID) (*Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.entries {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}
