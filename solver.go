package wordle

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"crosswarped.com/wordle/pkg/primitives"
)

var (
	// ErrNotFound is returned when the goal cannot be reached from the loaded dictionary.
	ErrNotFound = errors.New("no solution")

	// ErrExhausted means every candidate was eliminated before the goal was isolated.
	ErrExhausted = fmt.Errorf("%w: ran out of candidates", ErrNotFound)

	// ErrGoalAbsent means a single candidate remained but it is not the goal. This happens when the goal
	// is not in the dictionary, and would also surface an inconsistent index.
	ErrGoalAbsent = fmt.Errorf("%w: last candidate is not the goal", ErrNotFound)

	// ErrInvalidGoal is returned when the goal length does not match the dictionary.
	ErrInvalidGoal = errors.New("goal does not match the dictionary word length")
)

// Solver solves puzzles against a fixed dictionary.
//
// The dictionary index is built once by CreateSolver and then only read, so a Solver may serve concurrent
// Solve calls provided each call brings its own random source or Picker.
type Solver struct {
	index  *primitives.Index
	logger *zap.Logger
}

type SolverParams struct {
	// Logger receives a debug entry per guess. Defaults to a no-op logger.
	Logger *zap.Logger
}

// CreateSolver validates words and builds the index used by every subsequent solve.
func CreateSolver(ctx context.Context, words []string, params SolverParams) (*Solver, error) {
	dict, err := primitives.NewDictionary(words)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary: %w", err)
	}
	return NewSolver(ctx, dict, params)
}

// NewSolver builds the index for an already validated dictionary.
func NewSolver(ctx context.Context, dict *primitives.Dictionary, params SolverParams) (*Solver, error) {
	index, err := primitives.BuildIndex(ctx, dict)
	if err != nil {
		return nil, fmt.Errorf("building index: %w", err)
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{index: index, logger: logger}, nil
}

// Dictionary returns the words the solver guesses from.
func (s *Solver) Dictionary() *primitives.Dictionary {
	return s.index.Dictionary()
}

// Solve plays the puzzle for goal, picking each guess uniformly at random from the remaining candidates.
func (s *Solver) Solve(ctx context.Context, goal string, rng *rand.Rand) (Trace, error) {
	return s.SolveWith(ctx, goal, RandomPicker(rng))
}

// SolveWith plays the puzzle for goal, letting pick choose every guess.
//
// On success the returned trace ends with the goal. Otherwise the error wraps ErrNotFound, or is the
// context's error.
func (s *Solver) SolveWith(ctx context.Context, goal string, pick Picker) (Trace, error) {
	dict := s.index.Dictionary()
	if dict.Len() > 0 && len(goal) != dict.NumLetters() {
		return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidGoal, goal, len(goal), dict.NumLetters())
	}

	candidates := s.index.Full()
	var trace Trace

	// Every non-goal guess eliminates at least itself and a goal guess ends the solve, so the loop runs at most
	// once per word even when the goal is listed more than once.
	for {
		if err := ctx.Err(); err != nil {
			return trace, err
		}

		pool := candidates.Count()
		switch pool {
		case 0:
			return nil, ErrExhausted
		case 1:
			word := dict.Word(candidates.First())
			if word != goal {
				s.logger.Debug("single candidate is not the goal",
					zap.String("candidate", word),
					zap.String("goal", goal))
				return nil, ErrGoalAbsent
			}
			if last, ok := trace.Last(); !ok || last.Word != goal {
				trace = append(trace, Guess{Word: word, Feedback: primitives.AllCorrect(len(word)), Pool: 1})
			}
			s.logSolved(trace)
			return trace, nil
		}

		word := dict.Word(pick.Pick(candidates))
		feedback := primitives.Evaluate(word, goal)
		trace = append(trace, Guess{Word: word, Feedback: feedback, Pool: pool})
		if feedback.Solved() {
			s.logSolved(trace)
			return trace, nil
		}
		s.index.Apply(candidates, word, feedback)

		if ce := s.logger.Check(zap.DebugLevel, "guess"); ce != nil {
			ce.Write(
				zap.String("word", word),
				zap.Stringer("feedback", feedback),
				zap.Int("pool", pool),
				zap.Int("remaining", candidates.Count()),
				zap.Strings("open", s.openLetters(candidates)),
			)
		}
	}
}

func (s *Solver) logSolved(trace Trace) {
	if ce := s.logger.Check(zap.DebugLevel, "solved"); ce != nil {
		ce.Write(zap.String("trace", trace.DebugString()))
	}
}

// openLetters describes, per slot, which letters the remaining candidates still allow.
func (s *Solver) openLetters(c *primitives.Candidates) []string {
	open := make([]string, s.index.Dictionary().NumLetters())
	for slot := range open {
		var letters primitives.LetterSet
		s.index.LettersAt(c, &letters, slot)
		open[slot] = letters.String()
	}
	return open
}
