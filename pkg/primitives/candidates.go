package primitives

import (
	"fmt"
	"iter"

	"github.com/bits-and-blooms/bitset"
)

// Candidates is the set of dictionary indices still consistent with every feedback applied so far.
//
// A Candidates value belongs to a single solve run and is not safe for concurrent use.
type Candidates struct {
	set *bitset.BitSet
}

func newCandidates(n int) *Candidates {
	set := bitset.New(uint(n))
	if n > 0 {
		set.FlipRange(0, uint(n))
	}
	return &Candidates{set: set}
}

// Count returns the number of remaining candidates.
func (c *Candidates) Count() int {
	return int(c.set.Count())
}

// Contains reports whether idx is still a candidate.
func (c *Candidates) Contains(idx int) bool {
	return idx >= 0 && c.set.Test(uint(idx))
}

// Select returns the dictionary index of the j-th remaining candidate, counting from zero in index order.
func (c *Candidates) Select(j int) int {
	if j < 0 || j >= c.Count() {
		panic(fmt.Sprintf("select %d out of %d candidates", j, c.Count()))
	}
	return int(c.set.Select(uint(j)))
}

// First returns the lowest remaining dictionary index, or -1 if there is none.
func (c *Candidates) First() int {
	idx, ok := c.set.NextSet(0)
	if !ok {
		return -1
	}
	return int(idx)
}

// Indices iterates over the remaining dictionary indices in increasing order.
func (c *Candidates) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := c.set.NextSet(0); ok; i, ok = c.set.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// Clone returns an independent copy.
func (c *Candidates) Clone() *Candidates {
	return &Candidates{set: c.set.Clone()}
}

// IsSubsetOf reports whether every candidate in c is also in other.
func (c *Candidates) IsSubsetOf(other *Candidates) bool {
	return other.set.IsSuperSet(c.set)
}

func (c *Candidates) String() string {
	return fmt.Sprintf("Candidates(%d)", c.Count())
}
