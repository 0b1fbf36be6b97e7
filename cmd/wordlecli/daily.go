package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crosswarped.com/wordle/internal/config"
	"crosswarped.com/wordle/internal/metrics"
	"crosswarped.com/wordle/internal/nyt"
	"crosswarped.com/wordle/internal/webhook"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Solve today's puzzle and post the result to every configured webhook",
	Args:  cobra.NoArgs,
	RunE:  runDaily,
}

func runDaily(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	robotLines, err := config.ReadLines(cfg.RobotFile)
	if err != nil {
		return fmt.Errorf("reading robot lines: %w", err)
	}
	if len(robotLines) == 0 {
		return fmt.Errorf("%s has no robot lines", cfg.RobotFile)
	}
	webhookURLs, err := config.ReadLines(cfg.WebhookFile)
	if err != nil {
		return fmt.Errorf("reading webhook urls: %w", err)
	}

	solver, err := loadSolver(ctx)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	client := &nyt.Client{BaseURL: cfg.ManifestURL, HTTPClient: httpClient}
	manifest, err := client.Daily(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("could not get daily manifest: %w", err)
	}
	logger.Info("fetched manifest", zap.Int("id", manifest.ID), zap.Int("day", manifest.DaysSinceLaunch))

	rng := newRand(cfg.Seed)
	trace, err := solver.Solve(ctx, manifest.Solution, rng)
	metrics.ObserveSolve(trace, err)
	if err != nil {
		return fmt.Errorf("could not guess today's wordle: %w", err)
	}

	broadcaster := &webhook.Broadcaster{HTTPClient: httpClient, Logger: logger, Concurrency: cfg.Concurrency}
	// Robot lines are drawn up front: rng must not be used from the broadcast goroutines.
	lines := make(map[string]string, len(webhookURLs))
	for _, url := range webhookURLs {
		robotLine := robotLines[rng.IntN(len(robotLines))]
		lines[url] = webhook.Compose(robotLine, manifest.DaysSinceLaunch, trace)
	}
	sent := broadcaster.Send(ctx, webhookURLs, func(url string) string {
		return lines[url]
	})

	fmt.Fprintf(cmd.OutOrStdout(), "attempt sent to %d webhook URLs\n", sent)
	return nil
}
