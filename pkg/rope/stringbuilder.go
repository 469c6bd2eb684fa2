package rope

// Builder accumulates text incrementally and produces a single *Rope
// via BuildBulk, rather than growing a rope one small Insert at a
// time. It exists for call sites that assemble a rope out of many
// small pieces (one line at a time, one rune at a time) where the
// bulk-build path is the appropriate one, not the small-edit path.
type Builder struct {
	traits *Traits
	buf    []byte
}

// NewBuilder returns an empty Builder using DefaultTraits.
func NewBuilder() *Builder {
	return &Builder{traits: DefaultTraits}
}

// NewBuilderWithTraits returns an empty Builder using the given traits.
func NewBuilderWithTraits(traits *Traits) *Builder {
	return &Builder{traits: traits}
}

// Append adds s to the builder's pending content.
func (b *Builder) Append(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

// AppendRune adds a single rune to the builder's pending content.
func (b *Builder) AppendRune(r rune) *Builder {
	b.buf = append(b.buf, string(r)...)
	return b
}

// Build returns a *Rope over everything appended so far.
func (b *Builder) Build() *Rope {
	return FromBytes(b.traits, b.buf)
}
