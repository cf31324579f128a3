package notifier

import (
	"context"
	"log/slog"

	"github.com/jobsentry/jobsentry/internal/model"
)

// Ensure LogNotifier implements model.Notifier.
var _ model.Notifier = (*LogNotifier)(nil)

// LogNotifier writes payloads to the logger instead of a real channel.
// Used by check mode so a dry run dispatches nothing externally.
type LogNotifier struct {
	name   string
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that impersonates the named channel.
func NewLogNotifier(name string, logger *slog.Logger) *LogNotifier {
	return &LogNotifier{name: name, logger: logger}
}

func (n *LogNotifier) Name() string { return n.name }

// Send logs the payload. Returns nil (stdout logging does not fail).
func (n *LogNotifier) Send(_ context.Context, text string) error {
	n.logger.Info("dry-run payload", "channel", n.name, "payload", "\n"+text)
	return nil
}
