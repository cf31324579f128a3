package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jobsentry/jobsentry/internal/scheduler"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the daily daemon",
	Long:  "Runs one cycle immediately, then re-runs on the configured interval; blocks until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"interval", cfg.Interval.String(),
		"fetch_timeout", cfg.FetchTimeout.String(),
		"include_keywords", len(cfg.Filters.IncludeKeywords),
		"exclude_keywords", len(cfg.Filters.ExcludeKeywords),
	)

	p := buildPipeline(cfg, false, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(func(ctx context.Context) error {
		_, err := p.Run(ctx)
		return err
	}, cfg.Interval, logger)

	if err := sched.Run(ctx); err != nil {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
