package sources

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/blogwatch/cmd/common"
	internalsources "github.com/jonesrussell/blogwatch/internal/sources"
)

// listCommand returns the sources list subcommand.
func listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the monitored blog sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
}

func runList() error {
	deps, err := common.NewCommandDeps()
	if err != nil {
		return fmt.Errorf("initialize dependencies: %w", err)
	}

	srcs, err := internalsources.Effective(
		deps.Config.GetDiscoveryConfig().SourceFile,
		deps.Logger,
	)
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	renderTable(srcs)

	return nil
}

// renderTable formats and displays the sources in a table format.
func renderTable(srcs []internalsources.Config) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Name", "Kind", "URL", "Sitemap"})

	for i := range srcs {
		source := &srcs[i]
		t.AppendRow(table.Row{source.Name, string(source.Kind), source.URL, source.SitemapURL})
	}

	t.Render()
}
