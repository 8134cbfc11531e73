package notify

import "errors"

var (
	// ErrMissingCredentials indicates the bot token or chat ID is not
	// configured. Callers log and continue; the discovery result is still
	// valid without a notification.
	ErrMissingCredentials = errors.New("telegram credentials not configured")

	// ErrAPIRejected indicates the Telegram API answered but refused the
	// request.
	ErrAPIRejected = errors.New("telegram api rejected request")

	// ErrNoUpdates indicates getUpdates returned no messages to read a
	// chat ID from.
	ErrNoUpdates = errors.New("no telegram updates found")
)
