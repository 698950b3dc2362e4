package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"media-server/report"
	"media-server/scan"
)

// ReportCmd prints the size report without starting the server
var ReportCmd = withConfig(&cobra.Command{
	Use:   "report",
	Short: "Scan the media directories and print sizes by date",
	Long: `Scan the video and audio directories recursively and print the
total size of videos, images and audio per modification date, in MiB.

Examples:
  media-server report
  media-server report --html sizes.html`,
	Args: cobra.NoArgs,
	RunE: runReport,
})

func init() {
	ReportCmd.Flags().String("html", "", "Write the HTML report to this file instead of printing a table")
	ReportCmd.Flags().Bool("quiet", false, "Do not show scan progress")
}

func runReport(c *cobra.Command, args []string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	htmlPath, _ := c.Flags().GetString("html")
	quiet, _ := c.Flags().GetBool("quiet")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scanner := scan.NewScanner(cfg.ScanWorkers)
	if !quiet {
		scanner.Progress = scan.NewProgressSpinner()
	}

	r, err := report.NewBuilder(scanner, cfg.DiskUsage, cfg.VideoDir, cfg.AudioDir).Build(ctx)
	if scanner.Progress != nil {
		scanner.Progress.Stop()
	}
	if err != nil {
		return fmt.Errorf("scan interrupted: %w", err)
	}

	archive, err := openHistory(cfg)
	if err != nil {
		return err
	}
	if archive != nil {
		defer archive.Close()
		if _, err := archive.Append(r); err != nil {
			printError(fmt.Sprintf("could not archive report: %v", err))
		}
	}

	if htmlPath != "" {
		f, err := os.Create(htmlPath)
		if err != nil {
			return err
		}
		if err := report.Render(f, r); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("write %s: %w", htmlPath, err)
		}
		printSuccess(fmt.Sprintf("Wrote report for %d files to %s", r.Files, htmlPath))
		return nil
	}

	printTable(os.Stdout, r)
	return nil
}

func printTable(w io.Writer, r *report.Report) {
	if len(r.Rows) == 0 {
		fmt.Fprintln(w, yellow("No media files found."))
		return
	}

	header := fmt.Sprintf("%-12s %12s %12s %12s %12s", "Date", "Video (MiB)", "Image (MiB)", "Audio (MiB)", "Total (MiB)")
	fmt.Fprintln(w, bold(header))
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%-12s %12.2f %12.2f %12.2f %12s\n",
			row.Date, row.Video, row.Image, row.Audio, cyan(fmt.Sprintf("%12.2f", row.Total)))
	}
	fmt.Fprintln(w, strings.Repeat("-", len(header)))
	fmt.Fprintln(w, bold(fmt.Sprintf("%-12s %12.2f %12.2f %12.2f %12.2f",
		"Total", r.Totals.Video, r.Totals.Image, r.Totals.Audio, r.Totals.Total)))

	for _, d := range r.Disks {
		fmt.Fprintf(w, "%s %s: %s used of %s (%.1f%%)\n", yellow("•"), d.Path,
			scan.ToHumanSize(int64(d.Used)), scan.ToHumanSize(int64(d.Total)), d.UsedPercent)
	}
}
