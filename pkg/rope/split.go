package rope

// split.go implements locating the child responsible for a character
// index, and splitting a tree into two trees at that index.

// findForCharIdx returns which child of branch contains charIdx, and
// the character index of charIdx relative to the start of that child.
func findForCharIdx(branch treeHandle, charIdx int) (childIdx int, localCharIdx int) {
	remaining := charIdx
	for i, c := range branch.children() {
		size := c.sizeChars()
		if remaining <= size && i != int(branch.childCount)-1 {
			return i, remaining
		}
		if remaining <= size {
			return i, remaining
		}
		remaining -= size
	}
	return int(branch.childCount) - 1, remaining
}

// Split divides tree into two trees at charIdx: everything before
// charIdx, and everything from charIdx onward. It walks to the leaf
// containing charIdx, splits that leaf's buffer, and concatenates the
// accumulated left and right spines back into two standalone trees.
func Split(traits *Traits, tree treeHandle, charIdx int) (lhs, rhs treeHandle) {
	if charIdx <= 0 {
		return emptyTreeLike(traits), tree
	}
	if charIdx >= tree.sizeChars() {
		return tree, emptyTreeLike(traits)
	}

	if tree.isLeaf() {
		// Cut exactly at byteIdx, even mid-CRLF: the caller asked for
		// charIdx characters on the left, and lhs/rhs become two
		// independent trees rather than siblings of one, so there is
		// no shared leaf boundary left to protect from a torn pair.
		byteIdx := tree.byteIdxFromCharIdx(charIdx)
		data := tree.data()
		l := newHandleFromNode(newLeaf(traits, data[:byteIdx]))
		r := newHandleFromNode(newLeaf(traits, data[byteIdx:]))
		return l, r
	}

	childIdx, localCharIdx := findForCharIdx(tree, charIdx)
	childLhs, childRhs := Split(traits, tree.childAt(childIdx), localCharIdx)

	leftSiblings := tree.children()[:childIdx]
	rightSiblings := tree.children()[childIdx+1:]

	lhs = buildSpine(traits, leftSiblings, childLhs)
	rhs = buildSpine(traits, childRhs, rightSiblings)
	return lhs, rhs
}

func emptyTreeLike(traits *Traits) treeHandle {
	return newHandleFromNode(newLeaf(traits))
}

// buildSpine assembles a sequence of subtrees and sibling slices, in
// the order given, into a single tree by concatenating one at a time.
// It is used to reassemble the left and right halves of Split from
// their component pieces, each of which may itself be multi-level.
func buildSpine(traits *Traits, parts ...interface{}) treeHandle {
	var all []treeHandle
	for _, r := range parts {
		switch v := r.(type) {
		case treeHandle:
			all = append(all, v)
		case []treeHandle:
			all = append(all, v...)
		}
	}

	all = filterNonEmpty(all)
	if len(all) == 0 {
		return emptyTreeLike(traits)
	}

	acc := all[0]
	for _, t := range all[1:] {
		acc = treeConcat(traits, acc, t)
	}
	return acc
}

func filterNonEmpty(hs []treeHandle) []treeHandle {
	out := hs[:0:0]
	for _, h := range hs {
		if h.sizeChars() > 0 || h.isBranch() {
			out = append(out, h)
		}
	}
	return out
}
