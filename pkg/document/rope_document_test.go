package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/strandrope/rope/pkg/rope"
)

func TestRopeDocumentImplementsDocument(t *testing.T) {
	var _ Document = (*RopeDocument)(nil)

	d := NewRopeDocument(rope.FromString(nil, "hello, world"))
	assert.Equal(t, 12, d.Length())
	assert.Equal(t, "hello", d.Slice(0, 5))
	assert.Equal(t, "hello, world", d.String())
	assert.Equal(t, []byte("hello, world"), d.Bytes())
}

func TestRopeDocumentSlicePanicsOutOfBounds(t *testing.T) {
	d := NewRopeDocument(rope.FromString(nil, "abc"))
	assert.Panics(t, func() { d.Slice(0, 100) })
}

func TestRopeDocumentRopeAccessor(t *testing.T) {
	r := rope.FromString(nil, "abc")
	d := NewRopeDocument(r)
	assert.True(t, d.Rope().Equal(r))
}
