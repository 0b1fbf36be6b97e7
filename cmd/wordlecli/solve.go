package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"

	"crosswarped.com/wordle"
)

var (
	firstOnly         bool
	profile           bool
	profileFile       string
	memoryProfileFile string
)

var solveCmd = &cobra.Command{
	Use:   "solve GOAL",
	Short: "Solve the puzzle for a known goal word and print every guess",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&firstOnly, "first", false, "Always guess the first remaining word instead of a random one")
	solveCmd.Flags().BoolVar(&profile, "profile", false, "Profile the solver")
	solveCmd.Flags().StringVar(&profileFile, "profile-file", "cpu.pprof", "The file to write the CPU profile to")
	solveCmd.Flags().StringVar(&memoryProfileFile, "memory-profile-file", "mem.pprof", "The file to write the memory profile to")
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	goal := strings.ToLower(strings.TrimSpace(args[0]))

	if profile {
		f, err := os.Create(profileFile)
		if err != nil {
			return fmt.Errorf("creating profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	solver, err := loadSolver(ctx)
	if err != nil {
		return err
	}
	if _, ok := solver.Dictionary().Lookup(goal); !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %q is not in %s\n", goal, cfg.WordsFile)
	}

	pick := wordle.RandomPicker(newRand(cfg.Seed))
	if firstOnly {
		pick = wordle.FirstPicker()
	}
	trace, err := solver.SolveWith(ctx, goal, pick)
	if err != nil {
		return fmt.Errorf("could not solve %q: %w", goal, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), trace.Repr())

	if profile {
		mf, err := os.Create(memoryProfileFile)
		if err != nil {
			return fmt.Errorf("creating memory profile file: %w", err)
		}
		defer mf.Close()
		return pprof.WriteHeapProfile(mf)
	}
	return nil
}
