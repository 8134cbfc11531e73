// Package discover implements the one-shot discovery command: run the
// engine once, print what it found, optionally send the notification.
package discover

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/blogwatch/cmd/common"
	"github.com/jonesrussell/blogwatch/internal/domain"
	"github.com/jonesrussell/blogwatch/internal/notify"
)

// Command returns the discover command.
func Command() *cobra.Command {
	var (
		lookbackHours int
		sendNotify    bool
		asJSON        bool
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Run article discovery once and print the results",
		Long: `Run one discovery pass over the configured sources and print every
article published within the lookback window. Use --lookback-hours 720
for a 30-day backfill.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscover(cmd, lookbackHours, sendNotify, asJSON)
		},
	}

	cmd.Flags().IntVar(&lookbackHours, "lookback-hours", 0,
		"lookback window in hours (default from configuration)")
	cmd.Flags().BoolVar(&sendNotify, "notify", false,
		"send the result to the configured Telegram chat")
	cmd.Flags().BoolVar(&asJSON, "json", false,
		"print results as JSON instead of a table")

	return cmd
}

func runDiscover(cmd *cobra.Command, lookbackHours int, sendNotify, asJSON bool) error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	engine, err := common.NewEngine(deps)
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	if lookbackHours <= 0 {
		lookbackHours = deps.Config.GetDiscoveryConfig().LookbackHours
	}

	articles, err := engine.Run(cmd.Context(), time.Duration(lookbackHours)*time.Hour)
	if err != nil {
		return fmt.Errorf("discovery run: %w", err)
	}

	if renderErr := renderArticles(articles, asJSON); renderErr != nil {
		return renderErr
	}

	if sendNotify {
		notifier := notify.NewNotifier(deps.Config.GetTelegramConfig(), deps.Logger)
		if notifyErr := notifier.Notify(cmd.Context(), articles); notifyErr != nil {
			if errors.Is(notifyErr, notify.ErrMissingCredentials) {
				deps.Logger.Warn("Notification skipped, credentials not configured")
			} else {
				return fmt.Errorf("send notification: %w", notifyErr)
			}
		}
	}

	return nil
}

// renderArticles prints the result list as a table or JSON.
func renderArticles(articles []domain.Article, asJSON bool) error {
	if asJSON {
		if articles == nil {
			articles = []domain.Article{}
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(articles); err != nil {
			return fmt.Errorf("encode articles: %w", err)
		}

		return nil
	}

	if len(articles) == 0 {
		fmt.Println("No new articles found.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Source", "Title", "Date", "URL"})

	for i := range articles {
		article := &articles[i]
		t.AppendRow(table.Row{article.Source, article.Title, article.Date, article.URL})
	}

	t.Render()

	return nil
}
