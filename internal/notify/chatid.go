package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ChatInfo identifies the Telegram conversation found through getUpdates.
type ChatInfo struct {
	ChatID    int64
	Username  string
	FirstName string
}

// getUpdatesResponse is the Bot API getUpdates envelope, reduced to the
// fields the chat-id lookup reads.
type getUpdatesResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	Result      []struct {
		Message *struct {
			Chat struct {
				ID        int64  `json:"id"`
				Username  string `json:"username"`
				FirstName string `json:"first_name"`
			} `json:"chat"`
		} `json:"message"`
	} `json:"result"`
}

// DiscoverChatID asks the Bot API for pending updates and returns the chat
// behind the newest one carrying a message. Used once at setup time to
// learn the TELEGRAM_CHAT_ID value; someone must have messaged the bot
// first, otherwise ErrNoUpdates.
func (n *Notifier) DiscoverChatID(ctx context.Context) (ChatInfo, error) {
	if n.cfg.BotToken == "" {
		return ChatInfo{}, ErrMissingCredentials
	}

	endpoint := fmt.Sprintf("%s/bot%s/getUpdates", strings.TrimRight(n.cfg.BaseURL, "/"), n.cfg.BotToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return ChatInfo{}, fmt.Errorf("chatid new request: %w", err)
	}

	resp, doErr := n.httpClient.Do(req)
	if doErr != nil {
		return ChatInfo{}, fmt.Errorf("chatid fetch updates: %w", doErr)
	}
	defer resp.Body.Close()

	var updates getUpdatesResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&updates); decodeErr != nil {
		return ChatInfo{}, fmt.Errorf("chatid decode response: %w", decodeErr)
	}

	if !updates.OK {
		return ChatInfo{}, fmt.Errorf("%w: %s", ErrAPIRejected, updates.Description)
	}

	// Newest update first; skip updates without a plain message.
	for i := len(updates.Result) - 1; i >= 0; i-- {
		message := updates.Result[i].Message
		if message == nil {
			continue
		}

		return ChatInfo{
			ChatID:    message.Chat.ID,
			Username:  message.Chat.Username,
			FirstName: message.Chat.FirstName,
		}, nil
	}

	return ChatInfo{}, ErrNoUpdates
}
