package rope

// edit.go implements insertion, including the CRLF seam-mending
// protocol: when an edit leaves a dangling CR at the end of a leaf or a
// dangling LF at its front, the adjacent sibling leaf is patched (by
// appending or logically dropping a single byte) rather than leaving
// the pair split across the boundary.

// seam is a bitmask describing which edges of an edit result are left
// dangling: a lone trailing CR that might pair with a following LF in
// the next leaf, and/or a lone leading LF that might pair with a
// preceding CR in the previous leaf.
type seam int

const (
	seamNone  seam = 0
	seamLeft  seam = 1 << iota // dangling LF at the front of the result
	seamRight                  // dangling CR at the end of the result
)

func (s seam) has(x seam) bool { return s&x != 0 }

// editResult carries a rebuilt subtree plus whatever seam its edges
// still need mended by the caller above it.
type editResult struct {
	tree treeHandle
	seam seam
}

// Insert returns a new rope with text inserted at charIdx. Small
// insertions are grafted directly into the target leaf (splitting and
// redistributing it if it would overflow); insertions longer than
// Traits.BufEditMaxSize bytes are built in bulk and concatenated on either side of
// the split point instead, since growing one leaf byte-by-byte would
// be quadratic.
func Insert(traits *Traits, tree treeHandle, charIdx int, text []byte) treeHandle {
	if len(text) == 0 {
		return tree
	}

	if len(text) > traits.BufEditMaxSize() {
		return insertLargeText(traits, tree, charIdx, text)
	}

	result := insertSmallText(traits, tree, charIdx, text)
	textChars := textInfoFromBytes(text).Characters
	mended := mendSeams(traits, result, charIdx, charIdx+textChars)
	if traits.Debug {
		Validate(traits, mended)
	}
	return mended
}

// insertSmallText navigates to the leaf containing charIdx and grafts
// text into it, propagating any split upward via navigateToLeaf-style
// recursion.
func insertSmallText(traits *Traits, tree treeHandle, charIdx int, text []byte) editResult {
	if tree.isLeaf() {
		return insertIntoLeaf(traits, tree, charIdx, text)
	}

	childIdx, childCharIdx := findForCharIdx(tree, charIdx)
	child := tree.childAt(childIdx)
	childResult := insertSmallText(traits, child, childCharIdx, text)

	return foldChildEdit(traits, tree, childIdx, childResult)
}

// insertIntoLeaf performs the actual buffer surgery on a single leaf:
// it copies the leaf's window with text spliced in into a freshly
// allocated leaf, or rebuilds via insertAndRedistribute once the leaf
// would overflow. The existing leaf's buffer is never appended to.
func insertIntoLeaf(traits *Traits, leaf treeHandle, charIdx int, text []byte) editResult {
	byteIdx := leaf.byteIdxFromCharIdx(charIdx)
	data := leaf.data()
	atFront := byteIdx == 0
	atBack := byteIdx == len(data)

	combinedLen := len(data) + len(text)
	if combinedLen > traits.BufEditMaxSize() {
		lhs, rhs := insertAndRedistribute(traits, data, text, byteIdx)
		s := seamFromSplitEdges(lhs, rhs, atFront, atBack)
		merged := newHandleFromNode(newBranch(traits, 2, []treeHandle{lhs, rhs}))
		return editResult{tree: merged, seam: s}
	}

	newBuf := make([]byte, 0, combinedLen)
	newBuf = append(newBuf, data[:byteIdx]...)
	newBuf = append(newBuf, text...)
	newBuf = append(newBuf, data[byteIdx:]...)
	newLeafHandle := newHandleFromNode(newLeaf(traits, newBuf))

	return editResult{tree: newLeafHandle, seam: seamEdgesOf(newBuf, atFront, atBack)}
}

// seamEdgesOf reports which of buf's edges are newly dangling as a
// direct result of this edit. Only an edge the edit actually touched
// (insertion at the very front of the leaf's prior content, or at the
// very back) can introduce a *new* seam; a leading LF or trailing CR
// that was already there before this edit was already resolved by a
// prior mend, and re-examining it here would risk mending it twice.
func seamEdgesOf(buf []byte, atFront, atBack bool) seam {
	var s seam
	if atFront && len(buf) > 0 && buf[0] == charLF {
		s |= seamLeft
	}
	if atBack && len(buf) > 0 && buf[len(buf)-1] == charCR {
		s |= seamRight
	}
	return s
}

func seamFromSplitEdges(lhs, rhs treeHandle, atFront, atBack bool) seam {
	var s seam
	ld := lhs.data()
	rd := rhs.data()
	if atFront && len(ld) > 0 && ld[0] == charLF {
		s |= seamLeft
	}
	if atBack && len(rd) > 0 && rd[len(rd)-1] == charCR {
		s |= seamRight
	}
	return s
}

// foldChildEdit splices childResult.tree back into branch at childIdx,
// redistributing if the child's edit split it into two, and passes the
// child's unresolved seam up unchanged: only navigateToLeaf's caller at
// the rope boundary, or mendSeams walking back down, actually touches
// adjacent sibling leaves.
func foldChildEdit(traits *Traits, branch treeHandle, childIdx int, childResult editResult) editResult {
	if childResult.tree.height() == branch.height() {
		// the child split and came back as a synthetic 2-child wrapper
		// at this branch's own height; unwrap it into a genuine
		// replace-and-insert against this branch.
		lhs := childResult.tree.childAt(0)
		rhs := childResult.tree.childAt(1)
		results := replaceAndInsert(traits, branch, childIdx, lhs, rhs)
		return editResult{tree: wrapIfMany(traits, branch.height(), results), seam: childResult.seam}
	}

	newBranch := replaceChild(traits, branch, childIdx, childResult.tree)
	return editResult{tree: newBranch, seam: childResult.seam}
}

// mendSeams resolves any outstanding seam left by the edit: a dangling
// leading LF is merged into the rope's previous character (dropped
// from the front of the seam leaf and appended to the end of the prior
// leaf), and a dangling trailing CR is merged into the rope's next
// character symmetrically. leftBound is the character offset at which
// the (possibly left-seamed) inserted text begins; rightBound is the
// offset immediately after it. At the rope's own boundary, or when the
// adjacent sibling doesn't actually end/start with the matching byte,
// the dangling byte is harmless and left alone.
func mendSeams(traits *Traits, result editResult, leftBound, rightBound int) treeHandle {
	tree := result.tree
	if result.seam.has(seamRight) {
		tree = mendRightSeam(traits, tree, rightBound)
	}
	if result.seam.has(seamLeft) {
		tree = mendLeftSeam(traits, tree, leftBound)
	}
	return tree
}

// mendLeftSeam absorbs a dangling leading LF at character offset
// boundary into the preceding leaf, if that leaf's last byte is a CR:
// the CR/LF pair is reunited by appending the LF to the left leaf (an
// in-place append, safe because that byte was unobserved by any handle
// until this same operation extends the window to include it) and
// dropping the LF from the front of the seam leaf via the dropped-
// prefix mechanism instead of reallocating it.
func mendLeftSeam(traits *Traits, tree treeHandle, boundary int) treeHandle {
	if boundary <= 0 {
		return tree
	}
	lhs, rhs := Split(traits, tree, boundary)
	if lhs.sizeChars() == 0 || rhs.sizeChars() == 0 {
		return tree
	}

	newLhs, glued := navigateToBackLeaf(traits, lhs, func(l treeHandle) (treeHandle, any) {
		data := l.data()
		if len(data) == 0 || data[len(data)-1] != charCR {
			return l, false
		}
		return leafAppendByte(l, charLF), true
	})
	if ok, _ := glued.(bool); !ok {
		return tree
	}

	newRhs, _ := navigateToFrontLeaf(traits, rhs, func(l treeHandle) (treeHandle, any) {
		return leafDropFrontByte(l), nil
	})

	return treeConcat(traits, newLhs, newRhs)
}

// mendRightSeam is the mirror of mendLeftSeam: a dangling trailing CR
// just before character offset boundary is reunited with a leading LF
// at the front of the following leaf.
func mendRightSeam(traits *Traits, tree treeHandle, boundary int) treeHandle {
	if boundary >= tree.sizeChars() {
		return tree
	}
	lhs, rhs := Split(traits, tree, boundary)
	if lhs.sizeChars() == 0 || rhs.sizeChars() == 0 {
		return tree
	}

	newRhs, dropped := navigateToFrontLeaf(traits, rhs, func(l treeHandle) (treeHandle, any) {
		data := l.data()
		if len(data) == 0 || data[0] != charLF {
			return l, false
		}
		return leafDropFrontByte(l), true
	})
	if ok, _ := dropped.(bool); !ok {
		return tree
	}

	newLhs, _ := navigateToBackLeaf(traits, lhs, func(l treeHandle) (treeHandle, any) {
		return leafAppendByte(l, charLF), nil
	})

	return treeConcat(traits, newLhs, newRhs)
}

// leafAppendByte extends a leaf's visible window by one byte that was
// already physically present in buf or is being appended fresh, and
// recomputes the handle's TextInfo over the widened window. Only valid
// when that byte was not yet part of any observer's visible window.
func leafAppendByte(l treeHandle, b byte) treeHandle {
	ln := l.leaf()
	ln.append([]byte{b})
	window := ln.buf[l.info.DroppedBytes : l.info.DroppedBytes+l.info.Bytes+1]
	info := textInfoFromBytes(window)
	info.DroppedBytes = l.info.DroppedBytes
	info.DroppedCharacters = l.info.DroppedCharacters
	return newHandle(info, 0, l.node)
}

// leafDropFrontByte logically drops the first byte of a leaf's visible
// window by shifting the dropped-prefix offset forward one byte,
// rather than reallocating the buffer: the mechanism invariant 5 names
// specifically so seam mending never needs to copy a leaf to shrink it.
func leafDropFrontByte(l treeHandle) treeHandle {
	info := l.info
	info.DroppedBytes++
	info.DroppedCharacters++
	info.Bytes--
	info.Characters--
	info.LineBreaks--
	return newHandle(info, 0, l.node)
}

// insertLargeText handles an insertion longer than BufEditMaxSize:
// the rope is split at charIdx, the new text is bulk-built into its
// own balanced subtree, and the three pieces are concatenated back
// together.
func insertLargeText(traits *Traits, tree treeHandle, charIdx int, text []byte) treeHandle {
	lhs, rhs := Split(traits, tree, charIdx)
	built := BuildBulk(traits, text)
	merged := treeConcat(traits, lhs, built)
	result := treeConcat(traits, merged, rhs)
	if traits.Debug {
		Validate(traits, result)
	}
	return result
}
