package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jobsentry/jobsentry/internal/adapter"
	"github.com/jobsentry/jobsentry/internal/classify"
	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/filter"
	"github.com/jobsentry/jobsentry/internal/model"
	"github.com/jobsentry/jobsentry/internal/normalize"
	"github.com/jobsentry/jobsentry/internal/notifier"
	"github.com/jobsentry/jobsentry/internal/pipeline"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobsentry",
	Short: "Daily fresher job alerts",
	Long:  "JobSentry aggregates entry-level software postings from fixed sources and mails a daily digest.",
	// Default to `run` so cron entries can invoke the binary directly.
	RunE: runRun,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBSENTRY_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBSENTRY_CONFIG env var > "./config.yaml".
// A local .env file, if present, is loaded first so ${VAR} references in the
// config can expand from it.
func loadConfig(path string) (*config.Config, error) {
	_ = godotenv.Load()

	if path == "" {
		if env := os.Getenv("JOBSENTRY_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

// buildAdapters assembles the enabled source adapters in config order; that
// order is the dedup priority.
func buildAdapters(cfg *config.Config, httpClient *http.Client, logger *slog.Logger) []model.SourceAdapter {
	var adapters []model.SourceAdapter
	if cfg.Sources.LinkedIn.Enabled {
		adapters = append(adapters, adapter.NewLinkedInAdapter(cfg.Sources.LinkedIn, httpClient))
	}
	if cfg.Sources.Wellfound.Enabled {
		adapters = append(adapters, adapter.NewWellfoundAdapter(cfg.Sources.Wellfound, httpClient))
	}
	if cfg.Sources.Naukri.Enabled {
		adapters = append(adapters, adapter.NewNaukriAdapter(cfg.Sources.Naukri, httpClient))
	}
	for _, a := range adapters {
		logger.Info("registered source", "source", a.Name())
	}
	return adapters
}

func buildNormalizer(cfg *config.Config) *normalize.Normalizer {
	return normalize.New(map[string]normalize.Defaults{
		"linkedin": {
			Company:   cfg.Sources.LinkedIn.DefaultCompany,
			Location:  cfg.Sources.LinkedIn.DefaultLocation,
			SkillTags: cfg.Sources.LinkedIn.SkillTags,
		},
		"wellfound": {
			Company:   cfg.Sources.Wellfound.DefaultCompany,
			Location:  cfg.Sources.Wellfound.DefaultLocation,
			SkillTags: cfg.Sources.Wellfound.SkillTags,
		},
		"naukri": {
			Company:   cfg.Sources.Naukri.DefaultCompany,
			Location:  cfg.Sources.Naukri.DefaultLocation,
			SkillTags: cfg.Sources.Naukri.SkillTags,
		},
	})
}

// buildPipeline wires a full pipeline from config. With dryRun set, both
// channels are replaced by log notifiers so nothing is dispatched.
func buildPipeline(cfg *config.Config, dryRun bool, logger *slog.Logger) *pipeline.Pipeline {
	httpClient := &http.Client{Timeout: cfg.FetchTimeout}

	var mailChannel, chatChannel model.Notifier
	if dryRun {
		mailChannel = notifier.NewLogNotifier("mail", logger)
		if cfg.Telegram.Configured() {
			chatChannel = notifier.NewLogNotifier("telegram", logger)
		}
	} else {
		mailChannel = notifier.NewMailNotifier(cfg.Mail, cfg.FetchTimeout, logger)
		if cfg.Telegram.Configured() {
			chatChannel = notifier.NewTelegramNotifier(cfg.Telegram, httpClient, logger)
			logger.Info("telegram channel enabled", "chat_id", cfg.Telegram.ChatID)
		} else {
			logger.Info("telegram channel not configured, skipping")
		}
	}

	return pipeline.New(
		buildAdapters(cfg, httpClient, logger),
		buildNormalizer(cfg),
		filter.NewEngine(cfg.Filters.IncludeKeywords, cfg.Filters.ExcludeKeywords),
		classify.New(cfg.Filters.InternshipMarkers),
		mailChannel,
		chatChannel,
		pipeline.Options{
			FetchTimeout: cfg.FetchTimeout,
			DigestMax:    20,
			ChatLimit:    cfg.Telegram.Limit,
		},
		logger,
	)
}
