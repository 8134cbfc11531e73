// Package notify delivers discovery results to a Telegram chat through the
// Bot API. The notifier is an external collaborator of the discovery
// engine: it formats, it sends, and it is always safe to call with an
// empty article list.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/logger"
)

// Notifier sends article notifications via the Telegram Bot API.
type Notifier struct {
	cfg        config.TelegramConfig
	httpClient *http.Client
	log        logger.Interface
}

// NewNotifier creates a Notifier from Telegram configuration.
func NewNotifier(cfg *config.TelegramConfig, log logger.Interface) *Notifier {
	return &Notifier{
		cfg:        *cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// apiResponse is the envelope every Bot API call answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Configured reports whether both credentials are present.
func (n *Notifier) Configured() bool {
	return n.cfg.BotToken != "" && n.cfg.ChatID != ""
}

// Notify sends one message summarizing the articles. An empty list is a
// silent no-op. Missing credentials yield ErrMissingCredentials so callers
// can log and move on.
func (n *Notifier) Notify(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		n.log.Info("No new articles, skipping notification")
		return nil
	}

	return n.Send(ctx, FormatMessage(articles))
}

// Send delivers a raw message to the configured chat.
func (n *Notifier) Send(ctx context.Context, message string) error {
	if !n.Configured() {
		n.log.Warn("Telegram credentials not found, skipping notification")
		return ErrMissingCredentials
	}

	payload := sendMessageRequest{
		ChatID:    n.cfg.ChatID,
		Text:      message,
		ParseMode: n.cfg.ParseMode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notify marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", strings.TrimRight(n.cfg.BaseURL, "/"), n.cfg.BotToken)

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if reqErr != nil {
		return fmt.Errorf("notify new request: %w", reqErr)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := n.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("notify send: %w", doErr)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&apiResp); decodeErr != nil {
		return fmt.Errorf("notify decode response: %w", decodeErr)
	}

	if !apiResp.OK {
		return fmt.Errorf("%w: %d %s", ErrAPIRejected, apiResp.ErrorCode, apiResp.Description)
	}

	n.log.Info("Telegram notification sent", "chat_id", n.cfg.ChatID)

	return nil
}

// FormatMessage renders the notification text: a count line followed by
// one Markdown link line per article.
func FormatMessage(articles []domain.Article) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d new article(s):", len(articles))

	for i := range articles {
		article := &articles[i]
		fmt.Fprintf(&b, "\n- [%s](%s) (%s)", article.Title, article.URL, article.Date)
	}

	return b.String()
}
