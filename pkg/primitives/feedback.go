package primitives

import "strings"

// Mark is the classification of a single guessed letter.
type Mark uint8

const (
	Incorrect Mark = iota
	Partial
	Correct
)

func (m Mark) String() string {
	switch m {
	case Correct:
		return "🟩"
	case Partial:
		return "🟨"
	default:
		return "⬛"
	}
}

// Feedback holds one Mark per slot of a guess.
type Feedback []Mark

// AllCorrect returns the feedback of a solved guess of the given length.
func AllCorrect(numLetters int) Feedback {
	fb := make(Feedback, numLetters)
	for i := range fb {
		fb[i] = Correct
	}
	return fb
}

// Solved reports whether every slot is Correct.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != Correct {
			return false
		}
	}
	return len(f) > 0
}

func (f Feedback) String() string {
	var sb strings.Builder
	for _, m := range f {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// Evaluate scores guess against goal. Both words must have the same length.
//
// Correct matches are assigned first. Each remaining goal letter can then satisfy at most one guessed
// occurrence of that letter, earlier slots of the guess taking precedence.
func Evaluate(guess, goal string) Feedback {
	fb := make(Feedback, len(guess))

	var unmatched [NumLetters]int
	for i := 0; i < len(goal); i++ {
		if guess[i] == goal[i] {
			fb[i] = Correct
			continue
		}
		unmatched[goal[i]-minLetter]++
	}

	for i := 0; i < len(guess); i++ {
		if fb[i] == Correct {
			continue
		}
		ch := guess[i] - minLetter
		if unmatched[ch] > 0 {
			fb[i] = Partial
			unmatched[ch]--
		}
	}
	return fb
}
