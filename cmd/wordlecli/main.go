package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crosswarped.com/wordle"
	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/dictionary"
	"crosswarped.com/wordle/internal/logging"
	"crosswarped.com/wordle/internal/metrics"
)

var (
	configFile string
	verbose    bool
	wordLength int
	wordsFile  string
	seed       uint64

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "wordlecli",
	Short:         "Solve word-guessing puzzles by constraint elimination",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
		if cmd.Flags().Changed("length") {
			cfg.WordLength = wordLength
		}
		if cmd.Flags().Changed("words") {
			cfg.WordsFile = wordsFile
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed = seed
		}
		if verbose {
			cfg.Logging.Level = "debug"
		}

		logger, err = logging.New(cfg.Logging.Level)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every guess")
	rootCmd.PersistentFlags().IntVar(&wordLength, "length", 5, "The length of the words")
	rootCmd.PersistentFlags().StringVar(&wordsFile, "words", "words", "The file to load words from")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed; 0 picks one from the clock")

	rootCmd.AddCommand(solveCmd, dailyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond())))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// loadSolver reads the configured word file and builds a solver over it.
func loadSolver(ctx context.Context) (*wordle.Solver, error) {
	words, err := dictionary.LoadFile(ctx, cfg.WordsFile, cfg.WordLength)
	if err != nil {
		return nil, fmt.Errorf("loading words from %s: %w", cfg.WordsFile, err)
	}
	dict, err := dictionary.Build(dictionary.Params{Words: words, WordLength: cfg.WordLength})
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded words", zap.String("file", cfg.WordsFile), zap.Int("words", dict.Len()))

	start := time.Now()
	solver, err := wordle.NewSolver(ctx, dict, wordle.SolverParams{Logger: logger})
	if err != nil {
		return nil, err
	}
	metrics.ObserveIndexBuild(time.Since(start))
	return solver, nil
}
