package document

import "github.com/strandrope/rope/pkg/rope"

// RopeDocument adapts a *rope.Rope to the Document interface. Rope's own
// Slice is error-returning, since it's meant for callers that would
// rather check a bound than crash; Document's contract is the opposite
// (panic on an out-of-bounds slice), so this adapter is where that
// translation happens rather than in the rope package itself.
type RopeDocument struct {
	r *rope.Rope
}

// NewRopeDocument wraps r as a Document.
func NewRopeDocument(r *rope.Rope) *RopeDocument {
	return &RopeDocument{r: r}
}

func (d *RopeDocument) Length() int { return d.r.LenChars() }

func (d *RopeDocument) Slice(start, end int) string {
	s, err := d.r.Slice(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (d *RopeDocument) String() string { return d.r.String() }

func (d *RopeDocument) Bytes() []byte { return d.r.Bytes() }

// Clone returns d unchanged: the underlying *rope.Rope is already
// immutable, so there is nothing for a copy to protect against.
func (d *RopeDocument) Clone() Document { return d }

// Rope returns the underlying rope, for callers that need the richer API.
func (d *RopeDocument) Rope() *rope.Rope { return d.r }

var _ Document = (*RopeDocument)(nil)
