package rope

import "unicode/utf8"

// iterator.go implements in-order traversal of a rope's leaves and
// characters. Both iterators are read-only snapshots over an immutable
// tree: stepping one never mutates the tree it was built from, so the
// same *Rope can have any number of live iterators over it at once,
// including iterators started before and after an edit produced a
// sibling tree sharing structure with this one.

// leafFrame is one entry in a LeafIterator's descent stack: a branch,
// and which child index to visit next.
type leafFrame struct {
	branch treeHandle
	idx    int
}

// LeafIterator walks every leaf of a tree in order, left to right.
type LeafIterator struct {
	stack []leafFrame
	cur   treeHandle
	done  bool
}

// NewLeafIterator returns a LeafIterator positioned at tree's first leaf.
func NewLeafIterator(tree treeHandle) *LeafIterator {
	it := &LeafIterator{}
	it.descendTo(tree)
	return it
}

func (it *LeafIterator) descendTo(t treeHandle) {
	for t.isBranch() {
		if int(t.childCount) == 0 {
			it.done = true
			return
		}
		it.stack = append(it.stack, leafFrame{branch: t, idx: 1})
		t = t.childAt(0)
	}
	it.cur = t
}

// Done reports whether the iterator has visited every leaf.
func (it *LeafIterator) Done() bool { return it.done }

// Leaf returns the current leaf's handle. Valid only when !Done().
func (it *LeafIterator) Leaf() treeHandle { return it.cur }

// Next advances to the following leaf.
func (it *LeafIterator) Next() {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.idx < int(top.branch.childCount) {
			child := top.branch.childAt(top.idx)
			top.idx++
			it.descendTo(child)
			return
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.done = true
}

// CharIterator walks every codepoint of a tree in order. It yields
// codepoints by value rather than by reference into a leaf's buffer:
// the underlying buffer may be shared with, and appended to by, other
// tree handles, so handing back a pointer into it would let a caller
// observe bytes that do not belong to this iterator's view.
type CharIterator struct {
	leaves   *LeafIterator
	data     []byte
	byteIdx  int
	cur      rune
	curSize  int
	done     bool
}

// NewCharIterator returns a CharIterator positioned at tree's first character.
func NewCharIterator(tree treeHandle) *CharIterator {
	it := &CharIterator{leaves: NewLeafIterator(tree)}
	it.loadLeaf()
	it.decode()
	return it
}

func (it *CharIterator) loadLeaf() {
	for !it.leaves.Done() {
		it.data = it.leaves.Leaf().data()
		it.byteIdx = 0
		if len(it.data) > 0 {
			return
		}
		it.leaves.Next()
	}
	it.done = true
}

func (it *CharIterator) decode() {
	if it.done {
		return
	}
	for it.byteIdx >= len(it.data) {
		it.leaves.Next()
		it.loadLeaf()
		if it.done {
			return
		}
	}
	r, size := utf8.DecodeRune(it.data[it.byteIdx:])
	it.cur = r
	it.curSize = size
}

// Done reports whether every character has been visited.
func (it *CharIterator) Done() bool { return it.done }

// Current returns the codepoint at the iterator's position, by value.
func (it *CharIterator) Current() rune { return it.cur }

// Next advances to the following codepoint.
func (it *CharIterator) Next() {
	if it.done {
		return
	}
	it.byteIdx += it.curSize
	if it.byteIdx >= len(it.data) {
		it.leaves.Next()
		it.loadLeaf()
	}
	it.decode()
}
