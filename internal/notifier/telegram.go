package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jobsentry/jobsentry/internal/config"
	"github.com/jobsentry/jobsentry/internal/model"
)

const telegramAPIBase = "https://api.telegram.org"

// Ensure TelegramNotifier implements model.Notifier.
var _ model.Notifier = (*TelegramNotifier)(nil)

// TelegramNotifier is the optional secondary channel: a single sendMessage
// POST to the bot API per run.
type TelegramNotifier struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewTelegramNotifier returns a notifier posting to the given bot and chat.
func NewTelegramNotifier(cfg config.TelegramConfig, httpClient *http.Client, logger *slog.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		botToken:   cfg.BotToken,
		chatID:     cfg.ChatID,
		baseURL:    telegramAPIBase,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (n *TelegramNotifier) Name() string { return "telegram" }

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts text to the chat with HTML parse mode. Failures come back as
// *model.DispatchError; the orchestrator logs and swallows them.
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	payload := sendMessageRequest{
		ChatID:    n.chatID,
		Text:      text,
		ParseMode: "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return &model.DispatchError{Channel: n.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &model.DispatchError{
			Channel: n.Name(),
			Err:     fmt.Errorf("telegram returned %d", resp.StatusCode),
		}
	}

	n.logger.Info("telegram message sent", "chat_id", n.chatID)
	return nil
}
