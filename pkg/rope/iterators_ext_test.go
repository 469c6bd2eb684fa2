package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneIteratorWalksAndSeeks(t *testing.T) {
	r := FromString(nil, "abc")
	it := r.NewIterator()

	var got []rune
	for it.Next() {
		got = append(got, it.Current())
	}
	assert.Equal(t, []rune("abc"), got)
	assert.True(t, it.IsExhausted())

	assert.True(t, it.Seek(1))
	assert.True(t, it.Next())
	assert.Equal(t, 'b', it.Current())
}

func TestRuneIteratorPeekDoesNotAdvance(t *testing.T) {
	r := FromString(nil, "xy")
	it := r.NewIterator()
	it.Next()

	peeked, ok := it.Peek()
	assert.True(t, ok)
	assert.Equal(t, 'y', peeked)
	assert.Equal(t, 'x', it.Current())
}

func TestBytesIteratorCollect(t *testing.T) {
	r := FromString(nil, "hi")
	it := r.NewBytesIterator()
	assert.Equal(t, []byte("hi"), it.Collect())
}

func TestLinesIteratorSplitsOnNewlines(t *testing.T) {
	r := FromString(nil, "a\nb\r\nc")
	it := r.LinesIterator()

	var got []string
	for it.Next() {
		got = append(got, it.Current())
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestGraphemeIteratorOverAsciiText(t *testing.T) {
	r := FromString(nil, "abc")
	it := r.Graphemes()

	var got []string
	for it.Next() {
		got = append(got, it.Current().Text)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestReverseIteratorWalksBackToFront(t *testing.T) {
	r := FromString(nil, "abc")
	it := r.IterReverse()

	var got []rune
	for it.Next() {
		ch, err := it.Current()
		assert.NoError(t, err)
		got = append(got, ch)
	}
	assert.Equal(t, []rune("cba"), got)
}
