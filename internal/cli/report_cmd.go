package cli

import (
	"fmt"
	"os"

	"github.com/avaldez/qatrail/internal/report"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	reportOut   string
	reportPlain bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the current session's Markdown test report",
	Long: `Report renders the current session, its checklist results, and the bugs
found during it as a Markdown document. On a terminal the Markdown is
rendered with styling; piped or --plain output is raw Markdown suitable
for committing or pasting into an issue.`,
	Example: `  qat report
  qat report --plain
  qat report --out qa-report.md
  qat report > qa-report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, q, err := openQA()
		if err != nil {
			return err
		}
		defer db.Close()

		md := report.Render(q.State())

		if reportOut != "" {
			if err := os.WriteFile(reportOut, []byte(md), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("Wrote report to %s\n", reportOut)
			return nil
		}

		if reportPlain || !isTTY(os.Stdout) {
			fmt.Print(md)
			return nil
		}
		fmt.Print(renderMarkdown(md))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOut, "out", "", "write the report to a file instead of stdout")
	reportCmd.Flags().BoolVar(&reportPlain, "plain", false, "print raw Markdown even on a terminal")
	rootCmd.AddCommand(reportCmd)
}

// renderMarkdown styles Markdown for terminal display, wrapping at the
// terminal width capped at 100 columns. Falls back to the raw text when
// rendering fails.
func renderMarkdown(md string) string {
	const maxReadableWidth = 100
	wrap := getTermWidth()
	if wrap > maxReadableWidth {
		wrap = maxReadableWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
