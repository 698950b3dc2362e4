package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"media-server/cmd"
)

// Version information - set at build time
var (
	version   = "0.1.0"
	buildDate = "unknown"
	gitCommit = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "media-server",
	Short: "Serve and report on a local media library",
	Long: `media-server lists videos, images and audio from two directories,
streams them over HTTP and reports their sizes per day and media type.

Configuration comes from flags, MEDIA_* environment variables, a .env file
or a YAML file given with --config.`,
	Version:       fmt.Sprintf("%s (built %s, commit %s)", version, buildDate, gitCommit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(cmd.ServeCmd)
	rootCmd.AddCommand(cmd.ReportCmd)
	rootCmd.AddCommand(cmd.HistoryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
