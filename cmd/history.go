package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"media-server/history"
)

// HistoryCmd lists archived report summaries
var HistoryCmd = withConfig(&cobra.Command{
	Use:   "history",
	Short: "Show archived size reports",
	Long: `List summaries of previously generated reports, newest first.
Requires --history-db (or MEDIA_HISTORY_DB).`,
	Args: cobra.NoArgs,
	RunE: runHistory,
})

func init() {
	HistoryCmd.Flags().Int("limit", 10, "Maximum number of entries to show (0 = all)")
}

func runHistory(c *cobra.Command, args []string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		return fmt.Errorf("report history is disabled; set --history-db")
	}
	limit, _ := c.Flags().GetInt("limit")

	archive, err := openHistory(cfg)
	if err != nil {
		return err
	}
	defer archive.Close()

	entries, err := archive.List(limit)
	if err != nil {
		return err
	}
	printHistory(os.Stdout, entries)
	return nil
}

func printHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, yellow("No reports archived yet."))
		return
	}

	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", yellow(e.ID.String()[:8]), e.GeneratedAt.Local().Format(time.DateTime))
		fmt.Fprintf(w, "   %d files over %d days", e.Files, e.Rows)
		if e.Rows > 0 {
			fmt.Fprintf(w, " (%s .. %s)", e.Oldest, e.Newest)
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "   video %.2f  image %.2f  audio %.2f  %s\n\n",
			e.Totals.Video, e.Totals.Image, e.Totals.Audio, bold(fmt.Sprintf("total %.2f MiB", e.Totals.Total)))
	}
}
