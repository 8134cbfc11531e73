package notify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/notify"
)

func TestDiscoverChatIDReturnsNewestMessage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"ok": true,
			"result": [
				{"message": {"chat": {"id": 111, "username": "old", "first_name": "Old"}}},
				{"message": {"chat": {"id": 222, "username": "newest", "first_name": "New"}}}
			]
		}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(telegramConfig(server.URL), logger.NewNoOp())

	info, err := notifier.DiscoverChatID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(222), info.ChatID)
	assert.Equal(t, "newest", info.Username)
	assert.Equal(t, "New", info.FirstName)
}

func TestDiscoverChatIDSkipsNonMessageUpdates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"ok": true,
			"result": [
				{"message": {"chat": {"id": 333, "username": "real", "first_name": "Real"}}},
				{}
			]
		}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(telegramConfig(server.URL), logger.NewNoOp())

	info, err := notifier.DiscoverChatID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(333), info.ChatID)
}

func TestDiscoverChatIDNoUpdates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": true, "result": []}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(telegramConfig(server.URL), logger.NewNoOp())

	_, err := notifier.DiscoverChatID(context.Background())
	require.ErrorIs(t, err, notify.ErrNoUpdates)
}

func TestDiscoverChatIDMissingToken(t *testing.T) {
	t.Parallel()

	cfg := &config.TelegramConfig{
		BaseURL: "https://api.telegram.org",
		Timeout: 5 * time.Second,
	}

	notifier := notify.NewNotifier(cfg, logger.NewNoOp())

	_, err := notifier.DiscoverChatID(context.Background())
	require.ErrorIs(t, err, notify.ErrMissingCredentials)
}

func TestDiscoverChatIDAPIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok": false, "description": "Unauthorized"}`))
	}))
	defer server.Close()

	notifier := notify.NewNotifier(telegramConfig(server.URL), logger.NewNoOp())

	_, err := notifier.DiscoverChatID(context.Background())
	require.ErrorIs(t, err, notify.ErrAPIRejected)
	assert.Contains(t, err.Error(), "Unauthorized")
}
