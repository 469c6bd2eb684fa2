package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffDetectsInsertionAndDeletion(t *testing.T) {
	a := FromString(nil, "the cat sat")
	b := FromString(nil, "the big cat ran")

	spans := Diff(a, b)

	var sawInsert, sawDelete bool
	for _, s := range spans {
		if s.Op == DiffInsert {
			sawInsert = true
		}
		if s.Op == DiffDelete {
			sawDelete = true
		}
	}
	assert.True(t, sawInsert, "expected an insert span")
	assert.True(t, sawDelete, "expected a delete span")
}

func TestDiffOfIdenticalRopesIsAllEqual(t *testing.T) {
	a := FromString(nil, "no change here")
	b := FromString(nil, "no change here")

	spans := Diff(a, b)
	for _, s := range spans {
		assert.Equal(t, DiffEqual, s.Op)
	}
}

func TestStatCountsInsertedAndDeletedChars(t *testing.T) {
	spans := []DiffSpan{
		{Op: DiffEqual, Text: "the "},
		{Op: DiffDelete, Text: "cat"},
		{Op: DiffInsert, Text: "dog"},
		{Op: DiffEqual, Text: " ran"},
	}
	st := Stat(spans)
	assert.Equal(t, 3, st.CharsInserted)
	assert.Equal(t, 3, st.CharsDeleted)
}

func TestStatOnEmptyDiffIsZero(t *testing.T) {
	st := Stat(nil)
	assert.Equal(t, 0, st.CharsInserted)
	assert.Equal(t, 0, st.CharsDeleted)
}

func TestStatCountsMultibyteRunesNotBytes(t *testing.T) {
	spans := []DiffSpan{
		{Op: DiffInsert, Text: "日本語"},
	}
	st := Stat(spans)
	assert.Equal(t, 3, st.CharsInserted)
}
