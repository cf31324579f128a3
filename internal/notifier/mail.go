package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/model"
)

// Ensure MailNotifier implements model.Notifier.
var _ model.Notifier = (*MailNotifier)(nil)

// MailNotifier is the primary channel: a plain-text digest submitted over an
// authenticated SMTP session with mandatory STARTTLS.
type MailNotifier struct {
	cfg     config.MailConfig
	timeout time.Duration
	logger  *slog.Logger
}

// NewMailNotifier returns a notifier for the configured SMTP account.
func NewMailNotifier(cfg config.MailConfig, timeout time.Duration, logger *slog.Logger) *MailNotifier {
	return &MailNotifier{cfg: cfg, timeout: timeout, logger: logger}
}

func (n *MailNotifier) Name() string { return "mail" }

// Send submits body as a single message with the fixed configured subject.
// Any failure is a *model.DispatchError; callers treat mail failure as the
// run's failure.
func (n *MailNotifier) Send(ctx context.Context, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Sender); err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}
	if err := msg.To(n.cfg.Recipient); err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}
	msg.Subject(n.cfg.Subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.cfg.Sender),
		mail.WithPassword(n.cfg.Password),
		mail.WithTimeout(n.timeout),
	)
	if err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}

	n.logger.Info("mail sent", "to", n.cfg.Recipient, "subject", n.cfg.Subject)
	return nil
}
