package rope

// treeops.go holds the node-level rebuilding primitives shared by every
// edit algorithm: replacing a child, appending or inserting a new one,
// redistributing an overflowing set of children across one or two
// branches, merging or splitting subtrees of equal height, and the
// general two-tree concatenation that descends each tree's spine until
// a matching height is found.

// replaceChild rebuilds branch with the child at idx swapped for repl,
// recombining TextInfo from scratch. This is the single-child-changed
// case: it never changes how many children branch has.
func replaceChild(traits *Traits, branch treeHandle, idx int, repl treeHandle) treeHandle {
	return navigateUpwardsPassthrough(traits, branch, idx, repl)
}

// appendChild rebuilds branch with x appended as a new last child. The
// caller must already know branch has room (see hasRoom).
func appendChild(traits *Traits, branch treeHandle, x treeHandle) treeHandle {
	children := append(append([]treeHandle(nil), branch.children()...), x)
	return newHandleFromNode(newBranch(traits, branch.height(), children))
}

func hasRoom(branch treeHandle, traits *Traits) bool {
	return int(branch.childCount) < traits.BranchFactor
}

// insertChild rebuilds branch with x inserted at position idx, shifting
// every child at or after idx one slot to the right. Caller must know
// branch has room for one more child.
func insertChild(traits *Traits, branch treeHandle, idx int, x treeHandle) treeHandle {
	old := branch.children()
	children := make([]treeHandle, 0, len(old)+1)
	children = append(children, old[:idx]...)
	children = append(children, x)
	children = append(children, old[idx:]...)
	return newHandleFromNode(newBranch(traits, branch.height(), children))
}

// replaceAndInsert rebuilds branch with the child at idx replaced by
// repl, and ins spliced in immediately after it. This is how a leaf or
// branch split propagates: the split child is replaced by its left
// half, and its right half is inserted as the following sibling. If the
// resulting child count would exceed the branch factor, the overflow
// is redistributed into two sibling branches instead of one, and both
// are returned (wrapped by the caller into a new parent level).
func replaceAndInsert(traits *Traits, branch treeHandle, idx int, repl, ins treeHandle) []treeHandle {
	old := branch.children()
	merged := make([]treeHandle, 0, len(old)+1)
	merged = append(merged, old[:idx]...)
	merged = append(merged, repl, ins)
	merged = append(merged, old[idx+1:]...)

	if len(merged) <= traits.BranchFactor {
		return []treeHandle{newHandleFromNode(newBranch(traits, branch.height(), merged))}
	}
	return splitChildrenAcross(traits, branch.height(), merged)
}

// splitChildrenAcross redistributes an over-full slice of children into
// two roughly-balanced branches of the given height.
func splitChildrenAcross(traits *Traits, height uint32, children []treeHandle) []treeHandle {
	mid := ceilDiv(len(children), 2)
	lhs := newHandleFromNode(newBranch(traits, height, children[:mid]))
	rhs := newHandleFromNode(newBranch(traits, height, children[mid:]))
	return []treeHandle{lhs, rhs}
}

// constructFrom combines up to three groups of children (a left
// remainder, a middle insertion, and a right remainder) into one or
// two balanced branches at the given height, redistributing evenly
// when the combined count would overflow a single branch. This mirrors
// the source's three-buffer redistribution used when an insertion
// widens a branch's child set past the branch factor.
func constructFrom(traits *Traits, height uint32, groups ...[]treeHandle) []treeHandle {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	merged := make([]treeHandle, 0, total)
	for _, g := range groups {
		merged = append(merged, g...)
	}
	if total <= traits.BranchFactor {
		return []treeHandle{newHandleFromNode(newBranch(traits, height, merged))}
	}
	return splitChildrenAcross(traits, height, merged)
}

// treeMergeNodes merges two same-height subtrees into the fewest
// possible result handles: if their combined children fit in a single
// branch they are merged into one, otherwise they are redistributed
// evenly across two branches (never left lopsided, since one side
// being below the minimum-children invariant would break balance).
func treeMergeNodes(traits *Traits, lhs, rhs treeHandle) []treeHandle {
	if lhs.isLeaf() {
		return mergeLeaves(traits, lhs, rhs)
	}

	combined := append(append([]treeHandle(nil), lhs.children()...), rhs.children()...)
	if len(combined) <= traits.BranchFactor {
		return []treeHandle{newHandleFromNode(newBranch(traits, lhs.height(), combined))}
	}
	return splitChildrenAcross(traits, lhs.height(), combined)
}

// mergeLeaves merges or redistributes two leaves, never producing a
// leaf wider than BufEditMaxSize: if the combined bytes fit, they are
// concatenated into one leaf, otherwise split roughly down the middle
// at a codepoint- and CRLF-safe boundary.
func mergeLeaves(traits *Traits, lhs, rhs treeHandle) []treeHandle {
	combinedLen := lhs.sizeBytes() + rhs.sizeBytes()
	if combinedLen <= traits.BufEditMaxSize() {
		merged := newLeaf(traits, lhs.data(), rhs.data())
		return []treeHandle{newHandleFromNode(merged)}
	}

	splitIdx := findInternalSplitPoint(append(append([]byte(nil), lhs.data()...), rhs.data()...), lhs.sizeBytes())
	whole := append(append([]byte(nil), lhs.data()...), rhs.data()...)
	newLhs := newLeaf(traits, whole[:splitIdx])
	newRhs := newLeaf(traits, whole[splitIdx:])
	return []treeHandle{newHandleFromNode(newLhs), newHandleFromNode(newRhs)}
}

// isFullySaturated reports whether t could accept no further children
// without exceeding the branch factor; used by treeConcat to decide
// whether a same-height subtree may be spliced straight in as an
// additional sibling rather than merged/redistributed.
func isFullySaturated(t treeHandle, traits *Traits) bool {
	return isSaturatedFull(t, traits)
}

// treeConcat concatenates two trees of possibly different height. It
// descends the spine of the taller tree until it finds a subtree whose
// height matches the shorter tree, merges the two at that height, and
// rebuilds every branch back up the spine, growing the tree's overall
// height by one only when the root itself ends up needing a split.
func treeConcat(traits *Traits, lhs, rhs treeHandle) treeHandle {
	if lhs.height() == rhs.height() {
		results := treeMergeNodes(traits, lhs, rhs)
		return wrapIfMany(traits, lhs.height(), results)
	}

	if lhs.height() > rhs.height() {
		last := int(lhs.childCount) - 1
		child := lhs.childAt(last)
		if isFullySaturated(child, traits) && child.height() == rhs.height() && hasRoom(lhs, traits) && rhs.sizeChars() > 0 && rhs.isSaturated(traits) {
			results := appendChild(traits, lhs, rhs)
			return results
		}
		mergedChild := treeConcat(traits, child, rhs)
		results := replaceAndInsertOrReplace(traits, lhs, last, mergedChild)
		return wrapIfMany(traits, lhs.height(), results)
	}

	first := 0
	child := rhs.childAt(first)
	if isFullySaturated(child, traits) && child.height() == lhs.height() && hasRoom(rhs, traits) && lhs.sizeChars() > 0 && lhs.isSaturated(traits) {
		return insertChild(traits, rhs, 0, lhs)
	}
	mergedChild := treeConcat(traits, lhs, child)
	results := replaceAndInsertOrReplace(traits, rhs, first, mergedChild)
	return wrapIfMany(traits, rhs.height(), results)
}

// replaceAndInsertOrReplace replaces the child at idx with mergedChild
// directly if mergedChild is a single subtree, or with mergedChild's
// two halves (a replace-plus-insert) if descending produced a split,
// which shows as mergedChild having branch's own height. It returns one
// branch, or two when the replace-plus-insert overflowed branch; the
// caller wraps a pair into a fresh parent via wrapIfMany.
func replaceAndInsertOrReplace(traits *Traits, branch treeHandle, idx int, mergedChild treeHandle) []treeHandle {
	if mergedChild.height() == branch.height() {
		return replaceAndInsert(traits, branch, idx, mergedChild.childAt(0), mergedChild.childAt(1))
	}
	return []treeHandle{replaceChild(traits, branch, idx, mergedChild)}
}

// wrapIfMany returns results[0] unchanged if there is only one, or
// wraps both results (each of the given height) under a fresh branch
// one level taller, when concatenation produced a sibling pair instead
// of a single subtree.
func wrapIfMany(traits *Traits, height uint32, results []treeHandle) treeHandle {
	if len(results) == 1 {
		return results[0]
	}
	return newHandleFromNode(newBranch(traits, height+1, results))
}
