package primitives

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrWordLength is returned when a dictionary word does not have the dictionary's length.
	ErrWordLength = errors.New("word has the wrong length")
	// ErrWordAlphabet is returned when a dictionary word contains something other than a-z.
	ErrWordAlphabet = errors.New("word contains a non-lowercase letter")
)

// Dictionary is an ordered list of words of the same length. A word's index is its position in the list.
//
// A Dictionary is immutable and safe for concurrent use.
type Dictionary struct {
	words      []string
	numLetters int

	indexOnce   sync.Once
	indexByWord map[string]int
}

// NewDictionary validates words and returns a dictionary over them. The slice is retained, not copied.
func NewDictionary(words []string) (*Dictionary, error) {
	if len(words) == 0 {
		return &Dictionary{}, nil
	}

	numLetters := len(words[0])
	if numLetters == 0 {
		return nil, fmt.Errorf("word 0: %w", ErrWordLength)
	}
	for i, w := range words {
		if len(w) != numLetters {
			return nil, fmt.Errorf("word %d %q has %d letters, want %d: %w", i, w, len(w), numLetters, ErrWordLength)
		}
		for j := 0; j < len(w); j++ {
			if w[j] < minLetter || w[j] > maxLetter {
				return nil, fmt.Errorf("word %d %q: %w", i, w, ErrWordAlphabet)
			}
		}
	}
	return &Dictionary{words: words, numLetters: numLetters}, nil
}

// NumLetters returns the length of every word, or 0 for an empty dictionary.
func (d *Dictionary) NumLetters() int {
	return d.numLetters
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the word at idx.
func (d *Dictionary) Word(idx int) string {
	return d.words[idx]
}

// Lookup returns the index of the first occurrence of word.
func (d *Dictionary) Lookup(word string) (int, bool) {
	d.indexOnce.Do(func() {
		m := make(map[string]int, len(d.words))
		for i, w := range d.words {
			if _, ok := m[w]; !ok {
				m[w] = i
			}
		}
		d.indexByWord = m
	})
	idx, ok := d.indexByWord[word]
	return idx, ok
}
