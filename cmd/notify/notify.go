// Package notify implements the notification self-test command.
package notify

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/blogwatch/cmd/common"
	internalnotify "github.com/jonesrussell/blogwatch/internal/notify"
)

const defaultTestMessage = "blogwatch test notification"

// Command returns the notify command with its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage Telegram notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(testCommand())

	return cmd
}

// testCommand returns the notify test subcommand.
func testCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Send a test notification to the configured chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd, message)
		},
	}

	cmd.Flags().StringVar(&message, "message", defaultTestMessage,
		"message text to send")

	return cmd
}

func runTest(cmd *cobra.Command, message string) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	notifier := internalnotify.NewNotifier(deps.Config.GetTelegramConfig(), deps.Logger)

	if sendErr := notifier.Send(cmd.Context(), message); sendErr != nil {
		// Unconfigured credentials are a valid state, not a failed check.
		if errors.Is(sendErr, internalnotify.ErrMissingCredentials) {
			fmt.Println("Telegram credentials not configured; nothing sent.")
			fmt.Println("Set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID to enable notifications.")
			return nil
		}

		return fmt.Errorf("send test notification: %w", sendErr)
	}

	fmt.Println("Test notification sent.")

	return nil
}
