package wordle

import (
	"math/rand/v2"

	"crosswarped.com/wordle/pkg/primitives"
)

// Picker chooses the next guess among the remaining candidates. Pick is only called with at least two
// candidates and must return one of their dictionary indices.
type Picker interface {
	Pick(c *primitives.Candidates) int
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(c *primitives.Candidates) int

func (f PickerFunc) Pick(c *primitives.Candidates) int {
	return f(c)
}

// RandomPicker picks uniformly among the candidates using rng. The picker is only as safe for concurrent
// use as rng is.
func RandomPicker(rng *rand.Rand) Picker {
	return PickerFunc(func(c *primitives.Candidates) int {
		return c.Select(rng.IntN(c.Count()))
	})
}

// FirstPicker always picks the candidate that comes first in the dictionary.
func FirstPicker() Picker {
	return PickerFunc(func(c *primitives.Candidates) int {
		return c.First()
	})
}
