package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	traits := splitTraits()
	r := FromString(traits, "the quick brown fox jumps over the lazy dog")
	r = r.Insert(10, []byte("extremely "))
	assert.NotPanics(t, func() { r.Validate() })
}

func TestValidateAcceptsRootEmptyLeaf(t *testing.T) {
	traits := splitTraits()
	r := New(traits)
	assert.NotPanics(t, func() { r.Validate() })
}

func TestValidateRejectsNonRootEmptyLeaf(t *testing.T) {
	traits := splitTraits()
	emptyLeaf := newHandleFromNode(newLeaf(traits))
	left := newHandleFromNode(newLeaf(traits, []byte("ab")))
	branch := newHandleFromNode(newBranch(traits, 1, []treeHandle{left, emptyLeaf}))

	assert.Panics(t, func() { Validate(traits, branch) })
}
