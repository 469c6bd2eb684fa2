package rope

// builder.go implements the bulk builder: given a large byte slice,
// chop it into leaves of at most BufSize bytes (splitting only at
// codepoint- and CRLF-safe boundaries), then roll those leaves up into
// a balanced tree bottom-up using a small per-level staging stack. This
// is the path large inserts and FromBytes take, since growing a tree
// one small edit at a time would be quadratic in the input size.

// buildStack holds, for each tree height, the children staged at that
// level that have not yet been rolled up into a parent.
type buildStack struct {
	traits *Traits
	levels [][]treeHandle
}

func newBuildStack(traits *Traits) *buildStack {
	return &buildStack{traits: traits}
}

// push adds x at the given level, rolling the level up into the next
// one whenever it would exceed the staging capacity of
// BranchFactor+ceil(BranchFactor/2): rolling early like this keeps the
// stack from ever holding more than a small bounded number of pending
// nodes, no matter how large the input.
func (s *buildStack) push(level int, x treeHandle) {
	for len(s.levels) <= level {
		s.levels = append(s.levels, nil)
	}
	s.levels[level] = append(s.levels[level], x)

	cap := s.traits.BranchFactor + s.traits.BranchesInHalf()
	if len(s.levels[level]) > cap {
		s.rollUp(level)
	}
}

// rollUp takes the first BranchFactor children staged at level, turns
// them into one new branch, slides the remainder to the front of the
// level's slice, and pushes the new branch to level+1.
func (s *buildStack) rollUp(level int) {
	children := s.levels[level]
	taken := children[:s.traits.BranchFactor]
	rest := append([]treeHandle(nil), children[s.traits.BranchFactor:]...)
	s.levels[level] = rest

	parent := newHandleFromNode(newBranch(s.traits, uint32(level+2), taken))
	s.push(level+1, parent)
}

// finish rolls every remaining staged level up into a single tree. A
// level holding BranchFactor or fewer children becomes one parent; a
// level holding more is split evenly into two balanced parents that
// are then pushed up as siblings, same as an overflowing
// replaceAndInsert would.
func (s *buildStack) finish() treeHandle {
	for level := 0; level < len(s.levels); level++ {
		children := s.levels[level]
		if len(children) == 0 {
			continue
		}

		isTop := allLevelsAboveEmpty(s.levels, level)
		if isTop && len(children) == 1 {
			return children[0]
		}

		var parents []treeHandle
		if len(children) <= s.traits.BranchFactor {
			parents = []treeHandle{newHandleFromNode(newBranch(s.traits, uint32(level+2), children))}
		} else {
			parents = splitChildrenAcross(s.traits, uint32(level+2), children)
		}
		s.levels[level] = nil
		for _, p := range parents {
			s.push(level+1, p)
		}
	}

	if len(s.levels) == 0 {
		return emptyTreeLike(s.traits)
	}
	top := s.levels[len(s.levels)-1]
	if len(top) == 0 {
		return emptyTreeLike(s.traits)
	}
	if len(top) == 1 {
		return top[0]
	}
	return newHandleFromNode(newBranch(s.traits, uint32(len(s.levels)+1), top))
}

func allLevelsAboveEmpty(levels [][]treeHandle, level int) bool {
	for i := level + 1; i < len(levels); i++ {
		if len(levels[i]) > 0 {
			return false
		}
	}
	return true
}

// BuildBulk constructs a balanced tree over text in a single bottom-up
// pass: text is chopped into leaf-sized, break-safe chunks, and those
// leaves are staged and rolled up via buildStack.
func BuildBulk(traits *Traits, text []byte) treeHandle {
	if len(text) == 0 {
		return emptyTreeLike(traits)
	}

	stack := newBuildStack(traits)
	chunkSize := traits.BufEditMaxSize()

	offset := 0
	for offset < len(text) {
		end := offset + chunkSize
		if end > len(text) {
			end = len(text)
		} else if !isBreak(text, end) {
			end = findSplitPoint(text, end, biasLeft)
		}
		if end <= offset {
			end = nextBreak(text, offset)
		}

		leaf := newHandleFromNode(newLeaf(traits, text[offset:end]))
		stack.push(0, leaf)
		offset = end
	}

	return stack.finish()
}
