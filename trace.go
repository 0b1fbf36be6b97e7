package wordle

import (
	"fmt"
	"strings"

	"crosswarped.com/wordle/pkg/primitives"
)

// Guess is one step of a solve: the word played, the feedback it got and how many candidates remained
// before it was played.
type Guess struct {
	Word     string
	Feedback primitives.Feedback
	Pool     int
}

// Trace is the ordered list of guesses of a solve.
type Trace []Guess

// Last returns the most recent guess.
func (t Trace) Last() (Guess, bool) {
	if len(t) == 0 {
		return Guess{}, false
	}
	return t[len(t)-1], true
}

// Solved reports whether the trace ends with an all-Correct guess.
func (t Trace) Solved() bool {
	last, ok := t.Last()
	return ok && last.Feedback.Solved()
}

// Repr renders one line per guess: the feedback glyphs, the word and the pool size.
func (t Trace) Repr() string {
	lines := make([]string, len(t))
	for i, g := range t {
		lines[i] = fmt.Sprintf("%s %s %d", g.Feedback, g.Word, g.Pool)
	}
	return strings.Join(lines, "\n")
}

func (t Trace) DebugString() string {
	return fmt.Sprintf("Trace{guesses: %d, solved: %t, steps: %v}", len(t), t.Solved(), []Guess(t))
}
