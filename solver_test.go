package wordle

import (
	"bufio"
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"crosswarped.com/wordle/pkg/primitives"
)

func loadWords(t testing.TB) []string {
	file, err := os.Open("testdata/words.txt")
	if err != nil {
		t.Fatalf("failed to open words file: %v", err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan words file: %v", err)
	}
	return words
}

func mustSolver(t testing.TB, words []string) *Solver {
	s, err := CreateSolver(context.Background(), words, SolverParams{})
	if err != nil {
		t.Fatalf("CreateSolver() error = %v", err)
	}
	return s
}

func TestSolve_EveryGoal(t *testing.T) {
	words := loadWords(t)
	s := mustSolver(t, words)
	// Use a fixed seed for reproducibility.
	rng := rand.New(rand.NewPCG(42, 1024))

	for _, goal := range words {
		trace, err := s.Solve(t.Context(), goal, rng)
		if err != nil {
			t.Fatalf("Solve(%q) error = %v", goal, err)
		}
		if len(trace) == 0 || len(trace) > len(words) {
			t.Fatalf("Solve(%q) took %d guesses, want 1..%d", goal, len(trace), len(words))
		}
		if trace[0].Pool != len(words) && len(words) > 1 {
			t.Errorf("Solve(%q) first pool = %d, want %d", goal, trace[0].Pool, len(words))
		}

		last, _ := trace.Last()
		if last.Word != goal || !last.Feedback.Solved() {
			t.Errorf("Solve(%q) ended with %s %s", goal, last.Feedback, last.Word)
		}
		for i, g := range trace {
			if i > 0 && g.Pool >= trace[i-1].Pool {
				t.Errorf("Solve(%q) pool did not shrink at step %d: %d -> %d", goal, i, trace[i-1].Pool, g.Pool)
			}
			if i < len(trace)-1 && g.Word == goal {
				t.Errorf("Solve(%q) guessed the goal twice", goal)
			}
		}
	}
}

func TestSolve_GoalIsNeverEliminated(t *testing.T) {
	words := loadWords(t)
	s := mustSolver(t, words)
	rng := rand.New(rand.NewPCG(7, 7))

	for goalIdx, goal := range words {
		var prev *primitives.Candidates
		pick := PickerFunc(func(c *primitives.Candidates) int {
			if !c.Contains(goalIdx) {
				t.Fatalf("goal %q was eliminated", goal)
			}
			if prev != nil && !c.IsSubsetOf(prev) {
				t.Fatalf("goal %q: candidates grew between guesses", goal)
			}
			prev = c.Clone()
			return c.Select(rng.IntN(c.Count()))
		})
		if _, err := s.SolveWith(t.Context(), goal, pick); err != nil {
			t.Fatalf("SolveWith(%q) error = %v", goal, err)
		}
	}
}

func TestSolve_Traces(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		goal  string
		want  Trace
	}{
		{
			name:  "single word dictionary",
			words: []string{"crane"},
			goal:  "crane",
			want:  Trace{{Word: "crane", Feedback: primitives.AllCorrect(5), Pool: 1}},
		},
		{
			name:  "first guess is the goal",
			words: []string{"crane", "slate"},
			goal:  "crane",
			want:  Trace{{Word: "crane", Feedback: primitives.AllCorrect(5), Pool: 2}},
		},
		{
			name:  "goal isolated by elimination",
			words: []string{"crane", "slate"},
			goal:  "slate",
			want: Trace{
				{
					Word: "crane",
					Feedback: primitives.Feedback{
						primitives.Incorrect, primitives.Incorrect, primitives.Correct, primitives.Incorrect, primitives.Correct,
					},
					Pool: 2,
				},
				{Word: "slate", Feedback: primitives.AllCorrect(5), Pool: 1},
			},
		},
		{
			name:  "goal listed twice",
			words: []string{"crane", "slate", "crane"},
			goal:  "crane",
			want:  Trace{{Word: "crane", Feedback: primitives.AllCorrect(5), Pool: 3}},
		},
		{
			name:  "duplicates of a wrong guess",
			words: []string{"crane", "slate", "crane"},
			goal:  "slate",
			want: Trace{
				{
					Word: "crane",
					Feedback: primitives.Feedback{
						primitives.Incorrect, primitives.Incorrect, primitives.Correct, primitives.Incorrect, primitives.Correct,
					},
					Pool: 3,
				},
				{Word: "slate", Feedback: primitives.AllCorrect(5), Pool: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSolver(t, tt.words)
			got, err := s.SolveWith(t.Context(), tt.goal, FirstPicker())
			if err != nil {
				t.Fatalf("SolveWith() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SolveWith() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolve_DuplicateWordsTerminate(t *testing.T) {
	words := loadWords(t)
	doubled := append(append([]string(nil), words...), words...)
	s := mustSolver(t, doubled)
	rng := rand.New(rand.NewPCG(7, 11))

	for _, goal := range words {
		ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
		trace, err := s.Solve(ctx, goal, rng)
		cancel()
		if err != nil {
			t.Fatalf("Solve(%q) error = %v after %d guesses", goal, err, len(trace))
		}
		if len(trace) > len(doubled) {
			t.Errorf("Solve(%q) took %d guesses, want at most %d", goal, len(trace), len(doubled))
		}
		if last, _ := trace.Last(); last.Word != goal || !trace.Solved() {
			t.Errorf("Solve(%q) ended with %+v", goal, last)
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		goal    string
		wantErr error
	}{
		{"goal absent from dictionary", loadWords(t), "zzzzz", ErrNotFound},
		{"every candidate eliminated", []string{"crane", "slate"}, "zzzzz", ErrExhausted},
		{"single candidate is not the goal", []string{"crane"}, "crate", ErrGoalAbsent},
		{"empty dictionary", nil, "crane", ErrExhausted},
		{"wrong goal length", []string{"crane"}, "cranes", ErrInvalidGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustSolver(t, tt.words)
			_, err := s.SolveWith(t.Context(), tt.goal, FirstPicker())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("SolveWith() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSolve_NotFoundVariantsAreDistinct(t *testing.T) {
	if !errors.Is(ErrExhausted, ErrNotFound) || !errors.Is(ErrGoalAbsent, ErrNotFound) {
		t.Fatal("variants should wrap ErrNotFound")
	}
	if errors.Is(ErrExhausted, ErrGoalAbsent) || errors.Is(ErrGoalAbsent, ErrExhausted) {
		t.Fatal("variants should be distinguishable")
	}
}

func TestSolve_ContextCanceled(t *testing.T) {
	s := mustSolver(t, loadWords(t))
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	if _, err := s.Solve(ctx, "crane", rand.New(rand.NewPCG(1, 2))); !errors.Is(err, context.Canceled) {
		t.Errorf("Solve() error = %v, want context.Canceled", err)
	}
}

func TestSolve_SameSeedSameTrace(t *testing.T) {
	s := mustSolver(t, loadWords(t))

	a, err := s.Solve(t.Context(), "geese", rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := s.Solve(t.Context(), "geese", rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("traces differ (-first +second):\n%s", diff)
	}
}

func TestSolve_Concurrent(t *testing.T) {
	words := loadWords(t)
	s := mustSolver(t, words)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(uint64(i), 99))
			for _, goal := range words {
				if _, err := s.Solve(context.Background(), goal, rng); err != nil {
					errs[i] = err
					return
				}
			}
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("worker %d: %v", i, err)
		}
	}
}

func TestCreateSolver_RejectsMalformedWords(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr error
	}{
		{"mixed lengths", []string{"crane", "cranes"}, primitives.ErrWordLength},
		{"uppercase", []string{"crane", "Slate"}, primitives.ErrWordAlphabet},
		{"empty word", []string{""}, primitives.ErrWordLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateSolver(t.Context(), tt.words, SolverParams{})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateSolver() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSolve_LogsGuessesAndTrace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s, err := CreateSolver(t.Context(), []string{"crane", "slate"}, SolverParams{Logger: zap.New(core)})
	if err != nil {
		t.Fatalf("CreateSolver() error = %v", err)
	}

	trace, err := s.SolveWith(t.Context(), "slate", FirstPicker())
	if err != nil {
		t.Fatalf("SolveWith() error = %v", err)
	}

	if got := logs.FilterMessage("guess").Len(); got != 1 {
		t.Errorf("guess entries = %d, want 1", got)
	}
	solved := logs.FilterMessage("solved").All()
	if len(solved) != 1 {
		t.Fatalf("solved entries = %d, want 1", len(solved))
	}
	if got, want := solved[0].ContextMap()["trace"], trace.DebugString(); got != want {
		t.Errorf("logged trace = %v, want %q", got, want)
	}
}
