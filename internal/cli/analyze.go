package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/analysis"
	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewAnalyzeCmd creates the 'analyze' command.
func NewAnalyzeCmd() *cobra.Command {
	var jsonOutput bool
	var daily bool
	var windowDays int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the session history",
		Long: `Compute the trend report over the full session history: stability
score, classification, anomaly summary, and context correlations. The
report is derived fresh on every run and never stored.`,
		Example: `  tremorlog analyze
  tremorlog analyze --json
  tremorlog analyze --daily --window 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			defer store.Close()
			return runAnalyze(store, jsonOutput, daily, windowDays)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	cmd.Flags().BoolVar(&daily, "daily", false, "Show per-day variability averages")
	cmd.Flags().IntVar(&windowDays, "window", 7, "Rolling window in days for --daily")

	return cmd
}

func runAnalyze(store storage.Store, jsonOutput, daily bool, windowDays int) error {
	history, err := store.LoadSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	report := analysis.Analyze(history, time.Now())

	if jsonOutput {
		out := struct {
			*analysis.TrendAnalysis
			Daily []analysis.DailyVariability `json:"daily,omitempty"`
		}{TrendAnalysis: report}
		if daily {
			out.Daily = analysis.RollingAverage(history, windowDays)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Stability score:  %d / 100\n", report.StabilityScore)
	fmt.Printf("Classification:   %s (confidence %.1f)\n",
		report.Classification.Type, report.Classification.Confidence)
	fmt.Printf("\n%s\n", report.Summary)

	if len(report.Anomalies) > 0 {
		fmt.Println("\nAnomalies:")
		for _, a := range report.Anomalies {
			fmt.Printf("  - %s\n", a)
		}
	}

	if len(report.Correlations) > 0 {
		fmt.Println("\nCorrelations:")
		for _, c := range report.Correlations {
			fmt.Printf("  - [%s] %s\n", c.Impact, c.Description)
		}
	}

	if daily {
		rolled := analysis.RollingAverage(history, windowDays)
		if len(rolled) > 0 {
			fmt.Printf("\nDaily variability (%d-day rolling average):\n", windowDays)
			for _, day := range rolled {
				fmt.Printf("  %s  %.4f  (%d sessions)\n",
					day.Day.Format("2006-01-02"), day.Variability, day.Sessions)
			}
		}
	}

	return nil
}
