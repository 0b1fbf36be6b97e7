// Package dictionary loads and filters the word lists a solver guesses from.
package dictionary

import (
	"fmt"
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

type Params struct {
	Words         []string
	ExcludedWords []string
	WordLength    int
}

// Build lowercases Words, drops excluded, duplicate and wrong-length words, and returns the rest as a
// dictionary in their original order.
func Build(p Params) (*primitives.Dictionary, error) {
	if p.WordLength <= 0 {
		return nil, fmt.Errorf("word length must be positive, got %d", p.WordLength)
	}

	excluded := make(map[string]bool, len(p.ExcludedWords))
	for _, word := range p.ExcludedWords {
		excluded[strings.ToLower(word)] = true
	}

	seen := make(map[string]bool, len(p.Words))
	words := make([]string, 0, len(p.Words))
	for _, word := range p.Words {
		word = strings.ToLower(strings.TrimSpace(word))
		if len(word) != p.WordLength {
			continue
		}
		if excluded[word] || seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	return primitives.NewDictionary(words)
}
