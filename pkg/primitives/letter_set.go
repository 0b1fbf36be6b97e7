package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	minLetter = 'a'
	maxLetter = 'z'

	// NumLetters is the size of the alphabet words are drawn from.
	NumLetters = maxLetter - minLetter + 1
)

// LetterSet efficiently represents a set of lowercase letters.
type LetterSet struct {
	bits uint32
}

// Add adds a letter to the set.
func (l *LetterSet) Add(r rune) error {
	if r < minLetter || r > maxLetter {
		return fmt.Errorf("letter %c is out of range", r)
	}
	l.set(int(r - minLetter))
	return nil
}

// set adds the letter at offset li from 'a'; li must be in [0, NumLetters).
func (l *LetterSet) set(li int) {
	l.bits |= 1 << uint(li)
}

// Contains checks if a letter is in the set.
func (l *LetterSet) Contains(r rune) bool {
	if r < minLetter || r > maxLetter {
		return false
	}
	return l.bits&(1<<uint(r-minLetter)) != 0
}

// IsFull checks if every letter is in the set.
func (l *LetterSet) IsFull() bool {
	return l.Count() == NumLetters
}

// Count returns the number of letters in the set.
func (l *LetterSet) Count() int {
	return bits.OnesCount32(l.bits)
}

func (l *LetterSet) String() string {
	if l.IsFull() {
		return "[a-z]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for b := l.bits; b != 0; b &= b - 1 {
		sb.WriteRune(minLetter + rune(bits.TrailingZeros32(b)))
	}
	sb.WriteByte(']')
	return sb.String()
}
