package rope

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
)

// iterators_ext.go adapts the low-level LeafIterator/CharIterator onto
// the richer Seq family declared in iterator_interfaces.go: positional
// rune and byte iteration, line iteration, and grapheme-cluster
// iteration. Grapheme segmentation is the one piece of this package
// that genuinely needs Unicode text-segmentation rules beyond simple
// codepoint decoding, so it is the one place this package reaches for
// a segmenter instead of unicode/utf8.

// RuneIterator walks a rope's codepoints with position tracking,
// lookahead and seeking.
type RuneIterator struct {
	rope *Rope
	pos  int
	cur  rune
	it   *CharIterator
	has  bool
}

// NewIterator returns a RuneIterator positioned before the rope's first character.
func (r *Rope) NewIterator() *RuneIterator {
	return &RuneIterator{rope: r, pos: -1}
}

func (it *RuneIterator) Next() bool {
	if it.it == nil {
		it.it = it.rope.Chars()
	} else if it.has {
		it.it.Next()
	}
	if it.it.Done() {
		it.has = false
		return false
	}
	it.cur = it.it.Current()
	it.pos++
	it.has = true
	return true
}

func (it *RuneIterator) Current() rune   { return it.cur }
func (it *RuneIterator) Position() int   { return it.pos }
func (it *RuneIterator) HasNext() bool   { return it.pos+1 < it.rope.LenChars() }
func (it *RuneIterator) IsExhausted() bool { return !it.HasNext() }

func (it *RuneIterator) Reset() {
	it.pos = -1
	it.it = nil
	it.has = false
}

func (it *RuneIterator) Seek(pos int) bool {
	if pos < 0 || pos > it.rope.LenChars() {
		return false
	}
	it.Reset()
	it.it = it.rope.Chars()
	for i := 0; i < pos; i++ {
		it.it.Next()
	}
	it.pos = pos - 1
	return true
}

func (it *RuneIterator) Peek() (rune, bool) {
	if !it.HasNext() {
		return 0, false
	}
	r, err := it.rope.CharAt(it.pos + 1)
	if err != nil {
		return 0, false
	}
	return r, true
}

func (it *RuneIterator) Collect() []rune {
	var out []rune
	for it.Next() {
		out = append(out, it.Current())
	}
	return out
}

func (it *RuneIterator) HasPrevious() bool { return it.pos > 0 }

func (it *RuneIterator) Previous() bool {
	if !it.HasPrevious() {
		return false
	}
	if !it.Seek(it.pos - 1) {
		return false
	}
	return it.Next()
}

func (it *RuneIterator) Skip(n int) int {
	skipped := 0
	for i := 0; i < n && it.Next(); i++ {
		skipped++
	}
	return skipped
}

var (
	_ RuneIteratorBehavior = (*RuneIterator)(nil)
)

// BytesIterator walks a rope's bytes with position tracking.
type BytesIterator struct {
	rope *Rope
	pos  int
}

// NewBytesIterator returns a BytesIterator positioned before the rope's first byte.
func (r *Rope) NewBytesIterator() *BytesIterator {
	return &BytesIterator{rope: r, pos: -1}
}

func (it *BytesIterator) Next() bool {
	if it.pos+1 >= it.rope.LenBytes() {
		return false
	}
	it.pos++
	return true
}

func (it *BytesIterator) Current() byte {
	b, _ := it.rope.ByteAt(it.pos)
	return b
}

func (it *BytesIterator) Position() int     { return it.pos }
func (it *BytesIterator) BytePosition() int { return it.pos }
func (it *BytesIterator) HasNext() bool     { return it.pos+1 < it.rope.LenBytes() }
func (it *BytesIterator) IsExhausted() bool { return !it.HasNext() }
func (it *BytesIterator) Reset()            { it.pos = -1 }

func (it *BytesIterator) Seek(byteIdx int) bool {
	if byteIdx < 0 || byteIdx > it.rope.LenBytes() {
		return false
	}
	it.pos = byteIdx - 1
	return true
}

func (it *BytesIterator) Skip(n int) bool {
	if it.pos+1+n > it.rope.LenBytes() {
		return false
	}
	it.pos += n
	return true
}

func (it *BytesIterator) HasPeek() bool { return it.HasNext() }

func (it *BytesIterator) Peek() (byte, bool) {
	if !it.HasNext() {
		return 0, false
	}
	b, _ := it.rope.ByteAt(it.pos + 1)
	return b, true
}

func (it *BytesIterator) Collect() []byte {
	var out []byte
	for it.Next() {
		out = append(out, it.Current())
	}
	return out
}

var _ BytesIteratorBehavior = (*BytesIterator)(nil)

// LinesIterator walks a rope's lines, splitting on \n, \r\n, and the
// other break characters TextInfo already tracks.
type LinesIterator struct {
	lines []string
	idx   int
}

// LinesIterator returns a LinesIterator over the rope's content.
func (r *Rope) LinesIterator() *LinesIterator {
	return &LinesIterator{lines: splitLines(r.String()), idx: -1}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if !isNewline(r) {
			continue
		}
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		lines = append(lines, s[start:i])
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func (it *LinesIterator) Next() bool {
	if it.idx+1 >= len(it.lines) {
		return false
	}
	it.idx++
	return true
}

func (it *LinesIterator) Current() string { return strings.TrimRightFunc(it.lines[it.idx], isNewline) }
func (it *LinesIterator) LineNumber() int { return it.idx }
func (it *LinesIterator) Reset()          { it.idx = -1 }

func (it *LinesIterator) CurrentWithEnding() (string, error) {
	if it.idx < 0 || it.idx >= len(it.lines) {
		return "", &ErrIteratorState{Operation: "CurrentWithEnding", Reason: "no current line"}
	}
	return it.lines[it.idx], nil
}

func (it *LinesIterator) ToSlice() ([]string, error) {
	out := make([]string, len(it.lines))
	for i, line := range it.lines {
		out[i] = strings.TrimRightFunc(line, isNewline)
	}
	return out, nil
}

var _ LinesIteratorBehavior = (*LinesIterator)(nil)

// Grapheme is a single user-perceived character: one or more
// codepoints that a text editor should treat as a single unit for
// cursor movement and selection.
type Grapheme struct {
	Text    string
	CharIdx int
}

// GraphemeIterator walks a rope's grapheme clusters using uax29's
// implementation of Unicode Standard Annex #29.
type GraphemeIterator struct {
	data    []byte
	seg     *graphemes.Segmenter
	cur     Grapheme
	charIdx int
	pos     int
}

// Graphemes returns a GraphemeIterator over the rope's content.
func (r *Rope) Graphemes() *GraphemeIterator {
	data := r.Bytes()
	return &GraphemeIterator{data: data, seg: graphemes.NewSegmenter(data), pos: -1}
}

func (it *GraphemeIterator) Next() bool {
	if !it.seg.Next() {
		return false
	}
	text := string(it.seg.Bytes())
	it.cur = Grapheme{Text: text, CharIdx: it.charIdx}
	it.charIdx += len([]rune(text))
	it.pos++
	return true
}

func (it *GraphemeIterator) Current() Grapheme { return it.cur }
func (it *GraphemeIterator) Position() int     { return it.cur.CharIdx }
func (it *GraphemeIterator) Reset() {
	it.seg = graphemes.NewSegmenter(it.data)
	it.cur = Grapheme{}
	it.charIdx = 0
	it.pos = -1
}

var _ GraphemeIteratorBehavior = (*GraphemeIterator)(nil)

// ReverseIterator walks a rope's codepoints back to front.
type ReverseIterator struct {
	rope *Rope
	pos  int
}

// IterReverse returns a ReverseIterator positioned after the rope's last character.
func (r *Rope) IterReverse() *ReverseIterator {
	return &ReverseIterator{rope: r, pos: r.LenChars()}
}

func (it *ReverseIterator) Next() bool {
	if it.pos <= 0 {
		return false
	}
	it.pos--
	return true
}

func (it *ReverseIterator) Current() (rune, error) {
	return it.rope.CharAt(it.pos)
}

func (it *ReverseIterator) PositionFromStart() int { return it.pos }

func (it *ReverseIterator) SeekFromStart(pos int) bool {
	if pos < 0 || pos > it.rope.LenChars() {
		return false
	}
	it.pos = pos
	return true
}

func (it *ReverseIterator) Skip(n int) bool {
	if it.pos-n < 0 {
		return false
	}
	it.pos -= n
	return true
}

func (it *ReverseIterator) Reset() { it.pos = it.rope.LenChars() }

func (it *ReverseIterator) HasNext() bool   { return it.pos > 0 }
func (it *ReverseIterator) IsExhausted() bool { return it.pos <= 0 }

func (it *ReverseIterator) Peek() (rune, bool) {
	if it.pos <= 0 {
		return 0, false
	}
	r, err := it.rope.CharAt(it.pos - 1)
	if err != nil {
		return 0, false
	}
	return r, true
}

func (it *ReverseIterator) Collect() []rune {
	var out []rune
	for it.Next() {
		r, err := it.Current()
		if err != nil {
			break
		}
		out = append(out, r)
	}
	return out
}
