package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Dry run: fetch, build the digest, dispatch nothing",
	Long:  "Validates the config, fetches all sources, and logs the payloads that would be sent. No mail or chat message goes out.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("check mode: nothing will be dispatched")

	p := buildPipeline(cfg, true, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := p.Run(ctx)
	if err != nil {
		logger.Error("check failed", "error", err)
		os.Exit(1)
	}

	for _, r := range res.Reports {
		if r.Err != nil {
			logger.Warn("source error", "source", r.Source, "error", r.Err)
			continue
		}
		logger.Info("source summary", "source", r.Source, "fetched", r.Fetched, "kept", r.Kept)
	}
	logger.Info("check complete", "postings", len(res.Postings))
	return nil
}
