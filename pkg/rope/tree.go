package rope

// treeHandle is the value passed between every tree algorithm: a
// (TextInfo, child-count, node) triple describing exactly what subtree
// is visible through it. It is cheap to copy — a handle is a plain Go
// value holding a pointer to its node, so copying it is copying a
// struct with one slice-free pointer field, no atomic refcount bump
// required (see node.go).
type treeHandle struct {
	info       TextInfo
	childCount uint32
	node       node
}

func newHandleFromNode(n node) treeHandle {
	info := textInfoOf(n)
	return treeHandle{info: info, childCount: uint32(validChildrenCount(n)), node: n}
}

func newHandle(info TextInfo, childCount uint32, n node) treeHandle {
	return treeHandle{info: info, childCount: childCount, node: n}
}

func (t treeHandle) isLeaf() bool   { return t.node == nil || t.node.isLeaf() }
func (t treeHandle) isBranch() bool { return !t.isLeaf() }

func (t treeHandle) leaf() *leafNode     { return t.node.(*leafNode) }
func (t treeHandle) branch() *branchNode { return t.node.(*branchNode) }

func (t treeHandle) height() uint32 {
	if t.isLeaf() {
		return 1
	}
	return t.branch().height
}

// sizeChars is the number of live (non-dropped) characters this handle
// exposes.
func (t treeHandle) sizeChars() int { return t.info.Characters }

// sizeBytes is the number of live (non-dropped) bytes this handle exposes.
func (t treeHandle) sizeBytes() int { return t.info.Bytes }

func (t treeHandle) isSaturated(traits *Traits) bool {
	return t.isLeaf() || int(t.childCount) >= traits.MinimumBranches()
}

// children returns the children visible through this handle: at most
// childCount of them, even if the underlying branch has more (a handle
// may see fewer children than its node holds while that node is still
// being built — see branchNode.appendChild).
func (t treeHandle) children() []treeHandle {
	if t.isLeaf() {
		return nil
	}
	return t.branch().childrenView(int(t.childCount))
}

// backingChildren returns every child the underlying node actually
// holds, ignoring this handle's own childCount view.
func (t treeHandle) backingChildren() []treeHandle {
	if t.isLeaf() {
		return nil
	}
	return t.branch().childrenView(-1)
}

func (t treeHandle) childAt(idx int) treeHandle {
	return t.branch().children[idx]
}

// data returns the leaf's visible window: buf[DroppedBytes : DroppedBytes+Bytes].
func (t treeHandle) data() []byte {
	l := t.leaf()
	return l.buf[t.info.DroppedBytes : t.info.DroppedBytes+t.info.Bytes]
}

func (t treeHandle) byteIdxFromCharIdx(charIdx int) int {
	return utf8CharSeqIdxToByteIdx(t.data(), charIdx)
}

func textInfoOf(n node) TextInfo {
	if n == nil {
		return TextInfo{}
	}
	if n.isLeaf() {
		l := n.(*leafNode)
		return textInfoFromBytes(l.buf)
	}
	return n.(*branchNode).combinedInfo()
}

func validChildrenCount(n node) int {
	if n == nil || n.isLeaf() {
		return 0
	}
	return n.(*branchNode).size
}

// isSaturatedFull mirrors the stricter "fully saturated" test used only
// by treeConcat when deciding whether a subtree may be spliced in as a
// single additional child of its taller sibling without redistribution:
// unlike treeHandle.isSaturated (which asks for the minimum-fill
// invariant, ceil(B/2)), this asks for a completely full node.
func isSaturatedFull(t treeHandle, traits *Traits) bool {
	return t.isLeaf() || int(t.childCount) >= traits.BranchFactor
}
