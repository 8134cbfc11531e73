// Package chatid implements the one-time chat-ID discovery command used
// when setting up Telegram notifications.
package chatid

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/blogwatch/cmd/common"
	"github.com/jonesrussell/blogwatch/internal/notify"
)

// Command returns the chatid command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "chatid",
		Short: "Discover the Telegram chat ID for notifications",
		Long: `Look up the chat ID of the most recent conversation with the bot.
Message the bot first, then run this command and put the printed value
in TELEGRAM_CHAT_ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChatID(cmd)
		},
	}
}

func runChatID(cmd *cobra.Command) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	notifier := notify.NewNotifier(deps.Config.GetTelegramConfig(), deps.Logger)

	info, err := notifier.DiscoverChatID(cmd.Context())
	if err != nil {
		switch {
		case errors.Is(err, notify.ErrMissingCredentials):
			return errors.New("TELEGRAM_BOT_TOKEN is not set")
		case errors.Is(err, notify.ErrNoUpdates):
			fmt.Println("No updates found.")
			fmt.Println("Troubleshooting:")
			fmt.Println("1. Make sure you are messaging the correct bot.")
			fmt.Println("2. Send another message to the bot.")
			fmt.Println("3. Wait a few seconds and run this command again.")
			return nil
		default:
			return fmt.Errorf("fetch updates: %w", err)
		}
	}

	fmt.Printf("Found conversation with: %s (@%s)\n", info.FirstName, info.Username)
	fmt.Printf("Chat ID: %d\n", info.ChatID)
	fmt.Println("Use this value for TELEGRAM_CHAT_ID.")

	return nil
}
