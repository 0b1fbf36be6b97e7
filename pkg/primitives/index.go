package primitives

import (
	"context"
	"runtime"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
)

// Index holds the precomputed word-membership sets of a Dictionary.
//
// An Index is read-only once built and may be shared by any number of concurrent solve runs.
type Index struct {
	dict *Dictionary

	// position is a flattened 2D table of word-membership bitsets.
	//
	// Conceptually it is:
	//   position[slot][letterIdx] = BitSet(words that have rune('a'+letterIdx) at slot)
	//
	// Layout:
	//   position[slot*NumLetters + letterIdx]
	position []*bitset.BitSet

	// atLeast has the same layout as position, with the first coordinate being a threshold k instead of
	// a slot:
	//   atLeast[k][letterIdx] = BitSet(words containing rune('a'+letterIdx) at least k+1 times)
	atLeast []*bitset.BitSet
}

// BuildIndex computes the position and frequency tables for dict.
//
// Every (slot, letter) and (threshold, letter) cell is independent, so cells are filled concurrently. The
// only error returned is the context's.
func BuildIndex(ctx context.Context, dict *Dictionary) (*Index, error) {
	n := dict.NumLetters()
	ix := &Index{
		dict:     dict,
		position: make([]*bitset.BitSet, n*NumLetters),
		atLeast:  make([]*bitset.BitSet, n*NumLetters),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for slot := 0; slot < n; slot++ {
		for li := 0; li < NumLetters; li++ {
			letter := byte(minLetter + li)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				ix.position[cell(slot, li)] = ix.collect(func(word string) bool {
					return word[slot] == letter
				})
				return nil
			})
			// slot doubles as the threshold k: at most n occurrences are possible.
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				ix.atLeast[cell(slot, li)] = ix.collect(func(word string) bool {
					return occurrences(word, letter) >= slot+1
				})
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ix, nil
}

func (ix *Index) collect(match func(word string) bool) *bitset.BitSet {
	set := bitset.New(uint(ix.dict.Len()))
	for i, word := range ix.dict.words {
		if match(word) {
			set.Set(uint(i))
		}
	}
	return set
}

func cell(row, letterIdx int) int {
	return row*NumLetters + letterIdx
}

func occurrences(word string, letter byte) int {
	count := 0
	for i := 0; i < len(word); i++ {
		if word[i] == letter {
			count++
		}
	}
	return count
}

// Dictionary returns the dictionary the index was built from.
func (ix *Index) Dictionary() *Dictionary {
	return ix.dict
}

// Full returns a candidate set holding every dictionary index.
func (ix *Index) Full() *Candidates {
	return newCandidates(ix.dict.Len())
}

// Position returns the words with letter at slot. The result must not be modified.
func (ix *Index) Position(slot int, letter byte) *bitset.BitSet {
	return ix.position[cell(slot, int(letter-minLetter))]
}

// AtLeast returns the words containing letter at least k+1 times. The result must not be modified.
func (ix *Index) AtLeast(k int, letter byte) *bitset.BitSet {
	return ix.atLeast[cell(k, int(letter-minLetter))]
}

// LettersAt adds the letters that some candidate has at slot to accumulate.
func (ix *Index) LettersAt(c *Candidates, accumulate *LetterSet, slot int) {
	if accumulate.IsFull() {
		return
	}
	for li := 0; li < NumLetters; li++ {
		if accumulate.Contains(rune(minLetter + li)) {
			continue
		}
		if c.set.IntersectionCardinality(ix.position[cell(slot, li)]) > 0 {
			accumulate.set(li)
		}
	}
}
