package rope

// Traits describes the tuning parameters of a rope's B-tree: how many
// children a branch may hold, and how many bytes a leaf buffer may hold.
// Every tree operation in this package is parameterized by a *Traits
// value rather than a compile-time constant, so a process can run ropes
// of several shapes side by side (e.g. a small-leaf shape for tests that
// want to exercise splits cheaply, alongside the production shape).
type Traits struct {
	// BranchFactor is the maximum number of children a branch may hold.
	BranchFactor int

	// BufSize is the maximum number of bytes a leaf buffer may hold.
	BufSize int

	// Debug enables the internal validator after every tree-mutating
	// operation. It is expensive and meant for tests only.
	Debug bool
}

// MinimumBranches is the fewest children any non-root branch may hold,
// ceil(BranchFactor/2).
func (t *Traits) MinimumBranches() int { return ceilDiv(t.BranchFactor, 2) }

// BranchesInHalf is ceil(BranchFactor/2), used when splitting a
// full branch or leaf roughly down the middle.
func (t *Traits) BranchesInHalf() int { return ceilDiv(t.BranchFactor, 2) }

// BufEditMaxSize is the largest a leaf may grow to as the result of a
// single small-text edit: two bytes short of capacity, guaranteeing a
// seam-mending CRLF repair always has room to land.
func (t *Traits) BufEditMaxSize() int { return t.BufSize - 2 }

func ceilDiv(x, y int) int { return (x + y - 1) / y }

// DefaultTraits is the production shape: branching factor 4, 512-byte leaves.
var DefaultTraits = &Traits{BranchFactor: 4, BufSize: 512}

// TestTraits is a deliberately cramped shape used by tests to force
// splits, redistributions and height growth with small inputs.
var TestTraits = &Traits{BranchFactor: 4, BufSize: 9, Debug: true}
