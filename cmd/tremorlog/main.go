/*
Package main is the entry point for the tremorlog CLI.

tremorlog records tri-axial accelerometer/gyroscope sessions, derives
summary statistics, and analyzes the session history for trends,
anomalies, and context correlations.

Usage:

	tremorlog [command]

Available Commands:

	record      Record a new session
	list        List recorded sessions
	analyze     Analyze the session history
	search      Search sessions by notes and context
	export      Export the session history
	delete      Delete one or more sessions
	clear       Delete the entire session history
	settings    Show or change settings
	help        Help about any command

Examples:

	# Record a 10-second session with a context annotation
	tremorlog record --caffeine --notes "after two espressos"

	# See the trend report
	tremorlog analyze

	# Export everything as CSV
	tremorlog export --format csv --output sessions.csv
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tremorlog",
		Short: "Record and analyze tremor sessions from IMU data",
		Long: `tremorlog captures timed accelerometer/gyroscope recordings, reduces
them to magnitude series and summary statistics, and analyzes the
accumulated history: baseline comparison, trend direction, stability
classification, anomaly flagging, and context correlations.

All analysis is transparent rule-based statistics computed on demand
from the stored sessions; nothing is inferred or sent anywhere.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.AddCommand(cli.NewRecordCmd())
	rootCmd.AddCommand(cli.NewListCmd())
	rootCmd.AddCommand(cli.NewAnalyzeCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewExportCmd())
	rootCmd.AddCommand(cli.NewDeleteCmd())
	rootCmd.AddCommand(cli.NewClearCmd())
	rootCmd.AddCommand(cli.NewSettingsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
