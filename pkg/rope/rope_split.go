package rope

// SplitOff splits the rope at the given character position, returning
// a new rope containing the text before the split point, and a new
// rope containing the text after it.
//
// Example:
//
//	r := rope.FromString(nil, "Hello World")
//	left, right := r.SplitOff(5)
//	fmt.Println(left.String())   // Output: "Hello"
//	fmt.Println(right.String())  // Output: " World"
func (r *Rope) SplitOff(pos int) (*Rope, *Rope) {
	if pos <= 0 {
		return New(r.traits), r.Clone()
	}
	if pos >= r.Length() {
		return r.Clone(), New(r.traits)
	}
	return r.Split(pos)
}
