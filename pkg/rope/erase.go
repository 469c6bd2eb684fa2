package rope

// Erase returns a new rope with the characters in [beginIdx, endIdx)
// removed. It is built on Split and Concat rather than a bespoke
// recursive deletion: the rope is split at both edges of the range,
// and the two surviving outer pieces are concatenated directly,
// discarding the middle piece entirely. Concatenation already performs
// whatever merging or redistribution the resulting seam needs, so
// erase does not need its own leaf-level case analysis.
func Erase(traits *Traits, tree treeHandle, beginIdx, endIdx int) treeHandle {
	if beginIdx == endIdx {
		return tree
	}
	if beginIdx == 0 && endIdx >= tree.sizeChars() {
		return emptyTreeLike(traits)
	}

	lhs, mid := Split(traits, tree, beginIdx)
	_, rhs := Split(traits, mid, endIdx-beginIdx)

	result := treeConcat(traits, lhs, rhs)
	if traits.Debug {
		Validate(traits, result)
	}
	return result
}
