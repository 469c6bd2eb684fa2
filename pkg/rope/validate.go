package rope

import "fmt"

// Validate walks tree recursively and panics if any structural
// invariant is violated: a non-root leaf with an empty visible window,
// a non-root branch with fewer than the minimum number of children,
// children of mismatched height under the same parent, or a branch
// whose cached TextInfo disagrees with the sum of its children's. The
// edit operations call it after every edit only when Traits.Debug is
// set, since a full-tree walk per edit is too expensive for production
// use; Rope.Validate and Rope.ValidateErr call it unconditionally.
func Validate(traits *Traits, tree treeHandle) {
	validateNode(traits, tree, true)
}

func validateNode(traits *Traits, t treeHandle, isRoot bool) {
	if t.isLeaf() {
		if !isRoot && t.sizeChars() == 0 {
			panic("rope: non-root leaf has an empty visible window")
		}
		return
	}

	if !isRoot && int(t.childCount) < traits.MinimumBranches() {
		panic(fmt.Sprintf("rope: branch has %d children, fewer than the minimum %d", t.childCount, traits.MinimumBranches()))
	}

	children := t.children()
	if len(children) == 0 {
		return
	}

	expectHeight := children[0].height()
	for i, c := range children {
		if c.height() != expectHeight {
			panic(fmt.Sprintf("rope: child %d has height %d, expected %d", i, c.height(), expectHeight))
		}
		validateNode(traits, c, false)
	}

	if expectHeight+1 != t.height() {
		panic(fmt.Sprintf("rope: branch height %d does not match child height %d", t.height(), expectHeight))
	}

	var sum TextInfo
	for _, c := range children {
		sum = sum.Add(c.info)
	}
	sum.DroppedBytes = children[0].info.DroppedBytes
	sum.DroppedCharacters = children[0].info.DroppedCharacters

	if !sum.equal(t.info) {
		panic(fmt.Sprintf("rope: branch TextInfo %+v does not match computed %+v", t.info, sum))
	}
}
