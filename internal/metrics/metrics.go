// Package metrics exposes Prometheus metrics about solves.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"crosswarped.com/wordle"
)

var (
	solvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordle_solves_total",
		Help: "Solve runs by outcome",
	}, []string{"outcome"})

	solveGuesses = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordle_solve_guesses",
		Help:    "Number of guesses of successful solves",
		Buckets: prometheus.LinearBuckets(1, 1, 12),
	})

	indexBuildSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordle_index_build_seconds",
		Help:    "Time spent building dictionary indexes",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})
)

// Outcome names the result of a solve for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "solved"
	case errors.Is(err, wordle.ErrExhausted):
		return "exhausted"
	case errors.Is(err, wordle.ErrGoalAbsent):
		return "goal_absent"
	case errors.Is(err, wordle.ErrInvalidGoal):
		return "invalid_goal"
	default:
		return "error"
	}
}

// ObserveSolve records the result of one solve.
func ObserveSolve(trace wordle.Trace, err error) {
	solvesTotal.WithLabelValues(Outcome(err)).Inc()
	if err == nil {
		solveGuesses.Observe(float64(len(trace)))
	}
}

// ObserveIndexBuild records how long an index took to build.
func ObserveIndexBuild(d time.Duration) {
	indexBuildSeconds.Observe(d.Seconds())
}
