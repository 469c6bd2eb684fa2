package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitTraits() *Traits {
	return &Traits{BranchFactor: 4, BufSize: 9, Debug: true}
}

func TestFrontInsertSmall(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "abcd")
	r = r.Insert(0, []byte("XY"))

	assert.Equal(t, "XYabcd", r.String())
	assert.Equal(t, 6, r.LenChars())
	assert.Equal(t, 0, r.LineBreaks())
	assert.GreaterOrEqual(t, r.Depth(), 1)
	r.Validate()
}

func TestCRLFPreservationAtSeam(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "line1\r")
	r = r.PushBack([]byte("\nline2"))

	assert.Equal(t, 1, r.LineBreaks())
	assert.Equal(t, "line1\r\nline2", r.String())
	r.Validate()

	var prev byte
	first := true
	for it := r.Leaves(); !it.Done(); it.Next() {
		data := it.Leaf().data()
		if !first && prev == charCR && len(data) > 0 && data[0] == charLF {
			t.Fatalf("CR/LF pair split across adjacent leaves")
		}
		if len(data) > 0 {
			prev = data[len(data)-1]
		}
		first = false
	}
}

func TestLFFrontInsertionAdjacentToTrailingCR(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "foo\r")
	r = r.Insert(r.LenChars(), []byte("\nbar"))

	assert.Equal(t, 1, r.LineBreaks())
	assert.Equal(t, "foo\r\nbar", r.String())
	r.Validate()
}

func TestEraseCrossingManyLeaves(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, strings.Repeat("x", 1000))
	r = r.Erase(100, 800)

	assert.Equal(t, 200, r.LenChars())
	assert.Equal(t, strings.Repeat("x", 200), r.String())
	r.Validate()
}

func TestSplitRoundTrip(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "hello, world")
	lhs, rhs := r.Split(7)

	assert.Equal(t, "hello, ", lhs.String())
	assert.Equal(t, "world", rhs.String())

	joined := lhs.Concat(rhs)
	assert.True(t, joined.Equal(r))
	joined.Validate()
}

func TestLargeInsertForcesBulkBuildPath(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "ab")
	big := strings.Repeat("q", 10000)
	r = r.Insert(1, []byte(big))

	assert.Equal(t, 10002, r.LenChars())
	assert.Equal(t, "a"+big+"b", r.String())
	r.Validate()
}

func TestEmptyRopeOperations(t *testing.T) {
	traits := splitTraits()
	r := New(traits)
	assert.True(t, r.IsEmpty())

	r2 := r.Insert(0, nil)
	assert.True(t, r2.Equal(r))

	lhs, rhs := r.Split(0)
	assert.True(t, lhs.IsEmpty())
	assert.True(t, rhs.IsEmpty())

	r3 := r.Erase(0, 0)
	assert.True(t, r3.Equal(r))
}

func TestInsertAtFrontAndBack(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "middle")
	r = r.Insert(0, []byte("front-"))
	r = r.Insert(r.LenChars(), []byte("-back"))

	assert.Equal(t, "front-middle-back", r.String())
	r.Validate()
}

func TestInsertFillsLeafExactlyAndOverflowsByOne(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "")
	fill := strings.Repeat("a", traits.BufEditMaxSize())
	r = r.Insert(0, []byte(fill))
	assert.Equal(t, fill, r.String())
	r.Validate()

	r = r.Insert(r.LenChars(), []byte("b"))
	assert.Equal(t, fill+"b", r.String())
	r.Validate()
}

func TestMultiByteUTF8StraddlingLeafCapacity(t *testing.T) {
	traits := splitTraits()
	s := strings.Repeat("é", 20) // 2 bytes each, 40 bytes total
	r := FromString(traits, s)
	assert.Equal(t, 20, r.LenChars())
	assert.Equal(t, s, r.String())
	r.Validate()

	r = r.Insert(10, []byte("日本語"))
	runes := []rune(s)
	want := string(runes[:10]) + "日本語" + string(runes[10:])
	assert.Equal(t, want, r.String())
	assert.Equal(t, 23, r.LenChars())
	r.Validate()
}

func TestInsertEmptyIsNoop(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "hello")
	r2 := r.Insert(2, nil)
	assert.True(t, r2.Equal(r))
}

func TestEraseZeroIsNoop(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "hello")
	r2 := r.Erase(2, 2)
	assert.True(t, r2.Equal(r))
}

func TestFromBytesRoundTripsThroughBytes(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "the quick brown fox jumps over the lazy dog")
	r2 := FromBytes(traits, r.Bytes())
	assert.True(t, r2.Equal(r))
}

func TestCharAtMatchesAbstractString(t *testing.T) {
	traits := splitTraits()
	s := "hello, 世界"
	r := FromString(traits, s)
	runes := []rune(s)
	for i, want := range runes {
		got, err := r.CharAt(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestValidateAfterSequenceOfOperations(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "")
	ops := []func(*Rope) *Rope{
		func(r *Rope) *Rope { return r.Insert(0, []byte("hello")) },
		func(r *Rope) *Rope { return r.PushBack([]byte(" world")) },
		func(r *Rope) *Rope { return r.Insert(5, []byte(",")) },
		func(r *Rope) *Rope { return r.Erase(0, 1) },
		func(r *Rope) *Rope { return r.Replace(0, 2, []byte("XY")) },
	}
	for _, op := range ops {
		r = op(r)
		r.Validate()
	}
}

func TestInsertMatchesByteConcatenationLaw(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "hello world")
	inserted := []byte(" there")
	at := 5

	before := r.Bytes()
	boundary := byteOffsetOf(r, at)
	want := append(append(append([]byte(nil), before[:boundary]...), inserted...), before[boundary:]...)

	r2 := r.Insert(at, inserted)
	assert.Equal(t, string(want), r2.String())
}

func byteOffsetOf(r *Rope, charIdx int) int {
	s, err := r.Slice(0, charIdx)
	if err != nil {
		panic(err)
	}
	return len(s)
}

func TestPanicsOnOutOfBoundsInsert(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "abc")
	assert.Panics(t, func() { r.Insert(-1, []byte("x")) })
	assert.Panics(t, func() { r.Insert(100, []byte("x")) })
}

func TestPanicsOnOutOfBoundsErase(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "abc")
	assert.Panics(t, func() { r.Erase(2, 1) })
	assert.Panics(t, func() { r.Erase(0, 100) })
}

func TestSplitMidCRLFCutsExactlyAtCharIdx(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "a\r\nb")

	lhs, rhs := r.Split(2)
	assert.Equal(t, "a\r", lhs.String())
	assert.Equal(t, "\nb", rhs.String())
	assert.Equal(t, 2, lhs.LenChars())
	assert.Equal(t, 2, rhs.LenChars())
	lhs.Validate()
	rhs.Validate()

	joined := lhs.Concat(rhs)
	assert.True(t, joined.Equal(r))
}

func TestSplitOffClampsOutOfRangePositions(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "hello")

	left, right := r.SplitOff(-5)
	assert.True(t, left.IsEmpty())
	assert.Equal(t, "hello", right.String())

	left, right = r.SplitOff(100)
	assert.Equal(t, "hello", left.String())
	assert.True(t, right.IsEmpty())

	left, right = r.SplitOff(3)
	assert.Equal(t, "hel", left.String())
	assert.Equal(t, "lo", right.String())
}

func TestPanicsOnOutOfBoundsSplit(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "abc")
	assert.Panics(t, func() { r.Split(-1) })
	assert.Panics(t, func() { r.Split(100) })
}
