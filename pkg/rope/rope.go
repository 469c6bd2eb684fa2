package rope

import "bytes"

// Rope is an immutable, persistent sequence of UTF-8 text backed by a
// B-tree of append-only leaf buffers. Every mutating method returns a
// new *Rope; the receiver, and any other *Rope sharing structure with
// it, is left exactly as it was. This is what makes a *Rope safe to
// share across goroutines without synchronization: once built, a node
// is never changed in a way an existing observer could see.
type Rope struct {
	traits *Traits
	root   treeHandle
}

// New returns an empty rope using traits. Passing nil uses DefaultTraits.
func New(traits *Traits) *Rope {
	if traits == nil {
		traits = DefaultTraits
	}
	return &Rope{traits: traits, root: emptyTreeLike(traits)}
}

// FromBytes builds a rope over a copy of b using traits (DefaultTraits if nil).
func FromBytes(traits *Traits, b []byte) *Rope {
	if traits == nil {
		traits = DefaultTraits
	}
	r := &Rope{traits: traits, root: BuildBulk(traits, append([]byte(nil), b...))}
	if traits.Debug {
		Validate(traits, r.root)
	}
	return r
}

// FromString builds a rope over s using traits (DefaultTraits if nil).
func FromString(traits *Traits, s string) *Rope {
	return FromBytes(traits, []byte(s))
}

func (r *Rope) withRoot(root treeHandle) *Rope {
	return &Rope{traits: r.traits, root: root}
}

// LenChars returns the number of codepoints in the rope.
func (r *Rope) LenChars() int { return r.root.sizeChars() }

// LenBytes returns the number of UTF-8 bytes in the rope.
func (r *Rope) LenBytes() int { return r.root.sizeBytes() }

// LineBreaks returns the number of line breaks in the rope.
func (r *Rope) LineBreaks() int { return r.root.info.LineBreaks }

// IsEmpty reports whether the rope holds zero characters.
func (r *Rope) IsEmpty() bool { return r.LenChars() == 0 }

// PushBack returns a new rope with text appended to the end.
func (r *Rope) PushBack(text []byte) *Rope {
	return r.withRoot(Insert(r.traits, r.root, r.LenChars(), text))
}

// Insert returns a new rope with text inserted at charIdx.
func (r *Rope) Insert(charIdx int, text []byte) *Rope {
	if charIdx < 0 || charIdx > r.LenChars() {
		panic("rope: insert index out of bounds")
	}
	return r.withRoot(Insert(r.traits, r.root, charIdx, text))
}

// Erase returns a new rope with [beginIdx, endIdx) removed.
func (r *Rope) Erase(beginIdx, endIdx int) *Rope {
	if beginIdx < 0 || endIdx > r.LenChars() || beginIdx > endIdx {
		panic("rope: erase range out of bounds")
	}
	return r.withRoot(Erase(r.traits, r.root, beginIdx, endIdx))
}

// Delete is a synonym for Erase, matching MutableDocument.
func (r *Rope) Delete(beginIdx, endIdx int) *Rope { return r.Erase(beginIdx, endIdx) }

// Replace deletes [beginIdx, endIdx) and inserts text in its place.
func (r *Rope) Replace(beginIdx, endIdx int, text []byte) *Rope {
	return r.Erase(beginIdx, endIdx).Insert(beginIdx, text)
}

// Split divides the rope into two ropes at charIdx.
func (r *Rope) Split(charIdx int) (*Rope, *Rope) {
	if charIdx < 0 || charIdx > r.LenChars() {
		panic("rope: split index out of bounds")
	}
	lhs, rhs := Split(r.traits, r.root, charIdx)
	return r.withRoot(lhs), r.withRoot(rhs)
}

// Concat returns a new rope consisting of r followed by other. Both
// ropes must share the same Traits.
func (r *Rope) Concat(other *Rope) *Rope {
	return r.withRoot(treeConcat(r.traits, r.root, other.root))
}

// Clone returns r unchanged: since a *Rope is already immutable,
// cloning it is just sharing the same handle.
func (r *Rope) Clone() *Rope { return r }

// Validate panics if the rope's internal invariants do not hold.
func (r *Rope) Validate() { Validate(r.traits, r.root) }

// Leaves returns an iterator over the rope's leaf buffers in order.
func (r *Rope) Leaves() *LeafIterator { return NewLeafIterator(r.root) }

// Chars returns an iterator over the rope's codepoints in order.
func (r *Rope) Chars() *CharIterator { return NewCharIterator(r.root) }

// ForAllText calls fn with each leaf's visible byte window, in order,
// stopping early if fn returns false.
func (r *Rope) ForAllText(fn func([]byte) bool) {
	for it := r.Leaves(); !it.Done(); it.Next() {
		if !fn(it.Leaf().data()) {
			return
		}
	}
}

// Bytes returns the rope's full contents as a freshly allocated slice.
func (r *Rope) Bytes() []byte {
	buf := make([]byte, 0, r.LenBytes())
	r.ForAllText(func(chunk []byte) bool {
		buf = append(buf, chunk...)
		return true
	})
	return buf
}

// String returns the rope's full contents as a string.
func (r *Rope) String() string { return string(r.Bytes()) }

// Equal reports whether r and other contain exactly the same bytes,
// comparing leaf by leaf without ever materialising either rope's full
// contents into a single buffer.
func (r *Rope) Equal(other *Rope) bool {
	if r.LenBytes() != other.LenBytes() {
		return false
	}

	a, b := r.Leaves(), other.Leaves()
	var abuf, bbuf []byte
	for {
		for len(abuf) == 0 && !a.Done() {
			abuf = a.Leaf().data()
			a.Next()
		}
		for len(bbuf) == 0 && !b.Done() {
			bbuf = b.Leaf().data()
			b.Next()
		}
		if len(abuf) == 0 || len(bbuf) == 0 {
			return len(abuf) == len(bbuf)
		}
		n := len(abuf)
		if len(bbuf) < n {
			n = len(bbuf)
		}
		if !bytes.Equal(abuf[:n], bbuf[:n]) {
			return false
		}
		abuf = abuf[n:]
		bbuf = bbuf[n:]
	}
}

// EqualString reports whether the rope's contents equal s, compared
// codepoint by codepoint.
func (r *Rope) EqualString(s string) bool {
	it := r.Chars()
	for _, want := range s {
		if it.Done() || it.Current() != want {
			return false
		}
		it.Next()
	}
	return it.Done()
}
