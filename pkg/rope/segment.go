package rope

import (
	"unicode"

	"github.com/clipperhouse/uax29/words"
)

// segment.go provides word-boundary segmentation over a rope's
// contents, layered on top of (not inside) the core codepoint
// decoding: the tree's own TextInfo and navigation only ever need
// unicode/utf8, since nothing in the core algorithms cares where a
// word starts or ends. Editor features like double-click-to-select-
// word or a word-count status bar do care, which is what this file is
// for.

// Word describes one word-boundary segment: its text and the
// character offset at which it starts.
type Word struct {
	Text    string
	CharIdx int
}

// Words splits the rope's contents into Unicode Standard Annex #29
// word segments (this includes punctuation and whitespace runs as
// their own segments, matching uax29's definition of "word").
func (r *Rope) Words() []Word {
	seg := words.NewSegmenter(r.Bytes())
	var out []Word
	charIdx := 0
	for seg.Next() {
		text := string(seg.Bytes())
		out = append(out, Word{Text: text, CharIdx: charIdx})
		charIdx += len([]rune(text))
	}
	return out
}

// WordCount returns the number of word segments that are not purely
// whitespace or punctuation, a closer match to a human's idea of
// "word count" than len(r.Words()).
func (r *Rope) WordCount() int {
	count := 0
	for _, w := range r.Words() {
		if hasLetterOrDigit(w.Text) {
			count++
		}
	}
	return count
}

func hasLetterOrDigit(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
