package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads one word per line from path. Lines starting with '#', blank lines and words that are not
// wordLength letters long are skipped. Any other character than a-z is an error.
func LoadFile(ctx context.Context, path string, wordLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) != wordLength {
			continue
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// LoadRecords reads a fixed-width record file from path.
func LoadRecords(path string, wordLength int) ([]string, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitRecords(buf, wordLength)
}
