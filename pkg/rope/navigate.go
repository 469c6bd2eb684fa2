package rope

// navigate.go implements the generic "walk down to a leaf, do
// something, walk back up rebuilding branches" skeleton that every
// edit algorithm in this package is built from. The shape is always
// the same: a downFn decides which child to descend into (and may
// thread accumulated state, e.g. a running byte offset), a payloadFn
// runs once a leaf is reached, and an upFn folds the payload's result
// back into a freshly rebuilt parent as the walk ascends.

// navigateDownFn picks the child of branch to descend into next, given
// whatever state the walk is carrying, and returns the state to carry
// into that child.
type navigateDownFn func(data any, branch treeHandle) (childIdx int, nextData any)

// navigatePayloadFn runs once the walk reaches a leaf.
type navigatePayloadFn func(data any, leaf treeHandle) any

// navigateUpFn folds a child's result back into its parent, rebuilding
// the parent branch around it. idx is the index of the child that was
// just descended into/returned from.
type navigateUpFn func(data any, branch treeHandle, idx int, childResult any) any

// navigateToLeaf descends tree via downFn until it reaches a leaf, runs
// payloadFn there, then ascends back to the root via upFn, rebuilding
// every branch on the spine along the way.
func navigateToLeaf(tree treeHandle, data any, down navigateDownFn, payload navigatePayloadFn, up navigateUpFn) any {
	if tree.isLeaf() {
		return payload(data, tree)
	}

	idx, childData := down(data, tree)
	child := tree.childAt(idx)
	result := navigateToLeaf(child, childData, down, payload, up)
	return up(data, tree, idx, result)
}

// navigateUpwardsPassthrough is an upFn that simply replaces the
// descended-into child with childResult's handle and recombines the
// branch's TextInfo, without any seam-handling or merge logic. Most
// algorithms that don't need to react to their children's edits use
// this directly as their up step.
func navigateUpwardsPassthrough(traits *Traits, branch treeHandle, idx int, newChild treeHandle) treeHandle {
	children := append([]treeHandle(nil), branch.children()...)
	children[idx] = newChild
	return newHandleFromNode(newBranch(traits, branch.height(), children))
}

// navigateToFrontLeaf walks down the leftmost spine of tree, applying
// payload to the leftmost leaf and rebuilding every branch along the
// spine with the (possibly changed) leaf spliced back in. Used by seam
// mending to reach the first character of the *next* sibling leaf.
func navigateToFrontLeaf(traits *Traits, tree treeHandle, payload func(treeHandle) (treeHandle, any)) (treeHandle, any) {
	if tree.isLeaf() {
		return payload(tree)
	}
	child := tree.childAt(0)
	newChild, result := navigateToFrontLeaf(traits, child, payload)
	return navigateUpwardsPassthrough(traits, tree, 0, newChild), result
}

// navigateToBackLeaf is the mirror of navigateToFrontLeaf, descending
// the rightmost spine to reach the last character of the *previous*
// sibling leaf.
func navigateToBackLeaf(traits *Traits, tree treeHandle, payload func(treeHandle) (treeHandle, any)) (treeHandle, any) {
	if tree.isLeaf() {
		return payload(tree)
	}
	idx := int(tree.childCount) - 1
	child := tree.childAt(idx)
	newChild, result := navigateToBackLeaf(traits, child, payload)
	return navigateUpwardsPassthrough(traits, tree, idx, newChild), result
}
