package rope

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// diff.go computes an edit script between two ropes' contents. It
// exists for callers that want to know *what changed* between two
// immutable snapshots (e.g. two entries pulled out of a History) in
// order to render a diff view or ship a compact patch over the wire,
// rather than the two full documents.

// DiffOp mirrors diffmatchpatch's classification of a diff span:
// unchanged, inserted, or deleted text.
type DiffOp int

const (
	DiffEqual DiffOp = iota
	DiffInsert
	DiffDelete
)

// DiffSpan is one contiguous span of an edit script.
type DiffSpan struct {
	Op   DiffOp
	Text string
}

// Diff computes the edit script that turns a's contents into b's,
// using Myers' diff algorithm via diffmatchpatch.
func Diff(a, b *Rope) []DiffSpan {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a.String(), b.String(), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	out := make([]DiffSpan, 0, len(diffs))
	for _, d := range diffs {
		var op DiffOp
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		default:
			op = DiffEqual
		}
		out = append(out, DiffSpan{Op: op, Text: d.Text})
	}
	return out
}

// DiffStat summarises an edit script's size.
type DiffStat struct {
	CharsInserted int
	CharsDeleted  int
}

// Stat summarises a diff's inserted and deleted character counts.
func Stat(spans []DiffSpan) DiffStat {
	var st DiffStat
	for _, s := range spans {
		n := len([]rune(s.Text))
		switch s.Op {
		case DiffInsert:
			st.CharsInserted += n
		case DiffDelete:
			st.CharsDeleted += n
		}
	}
	return st
}
