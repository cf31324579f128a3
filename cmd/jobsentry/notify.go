package main

import (
	"context"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobsentry/jobsentry/internal/digest"
	"github.com/jobsentry/jobsentry/internal/model"
	"github.com/jobsentry/jobsentry/internal/notifier"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Notification subcommands",
}

var notifyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Send a canned digest through the configured channels",
	Long:  "Sends a single dummy posting through the real mail channel (and telegram when configured) to verify credentials.",
	RunE:  runNotifyTest,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
	notifyCmd.AddCommand(notifyTestCmd)
}

func runNotifyTest(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sample := []model.Posting{{
		Source:    "test",
		Company:   "Example Labs",
		Title:     "Java Developer Fresher (test alert)",
		Location:  "India / Remote",
		SkillTags: []string{"Java", "MERN"},
		Link:      "https://example.com/apply",
		PostedAt:  "Recent",
		Category:  model.CategoryInternship,
	}}

	ctx := context.Background()

	mailChannel := notifier.NewMailNotifier(cfg.Mail, cfg.FetchTimeout, logger)
	if err := mailChannel.Send(ctx, digest.RenderDigest(sample, 0)); err != nil {
		logger.Error("test mail failed", "error", err)
		os.Exit(1)
	}
	logger.Info("test mail sent")

	if cfg.Telegram.Configured() {
		httpClient := &http.Client{Timeout: cfg.FetchTimeout}
		chat := notifier.NewTelegramNotifier(cfg.Telegram, httpClient, logger)
		if err := chat.Send(ctx, digest.RenderShortList(sample, cfg.Telegram.Limit)); err != nil {
			logger.Error("test telegram message failed", "error", err)
			os.Exit(1)
		}
		logger.Info("test telegram message sent")
	}

	return nil
}
