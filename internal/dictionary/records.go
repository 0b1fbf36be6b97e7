package dictionary

import (
	"errors"
	"fmt"
)

// ErrShortRecord is returned when a buffer ends in the middle of a record.
var ErrShortRecord = errors.New("truncated record")

// SplitRecords splits buf into words of n bytes, each followed by a single separator byte. The separator
// of the last record may be missing.
func SplitRecords(buf []byte, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("record length must be positive, got %d", n)
	}

	words := make([]string, 0, len(buf)/(n+1)+1)
	for start := 0; start < len(buf); start += n + 1 {
		if start+n > len(buf) {
			return nil, fmt.Errorf("record %d at byte %d: %w", len(words), start, ErrShortRecord)
		}
		words = append(words, string(buf[start:start+n]))
	}
	return words, nil
}
