package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"media-server/config"
	"media-server/history"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), msg)
}

func printSuccess(msg string) {
	fmt.Println(green("✓"), msg)
}

// withConfig registers the shared configuration flags on c.
func withConfig(c *cobra.Command) *cobra.Command {
	config.RegisterFlags(c.Flags())
	return c
}

func loadConfig(c *cobra.Command) (*config.Config, error) {
	return config.Load(c.Flags())
}

// openHistory opens the report archive, or returns nil when it is disabled.
func openHistory(cfg *config.Config) (*history.Store, error) {
	if cfg.HistoryDB == "" {
		return nil, nil
	}
	return history.Open(cfg.HistoryDB)
}
