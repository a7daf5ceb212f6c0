package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewListCmd creates the 'list' command.
func NewListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded sessions",
		Long:    `Display all recorded sessions with their summary statistics, newest first.`,
		Example: `  tremorlog list
  tremorlog ls --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			defer store.Close()
			return runList(store, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runList(store storage.Store, jsonOutput bool) error {
	sessions, err := store.LoadSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(sessions)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println("Run 'tremorlog record' to capture one.")
		return nil
	}

	fmt.Printf("Recorded sessions (%d):\n\n", len(sessions))
	for _, sess := range sessions {
		fmt.Printf("  %s\n", sess.ID)
		fmt.Printf("    Recorded:   %s (%ds)\n",
			sess.Timestamp.Local().Format("2006-01-02 15:04:05"), int(sess.Duration.Seconds()))
		fmt.Printf("    Stats:      mean %.4f  variability %.4f  peak %.4f\n",
			sess.Stats.MeanAmplitude, sess.Stats.Variability, sess.Stats.PeakAmplitude)
		if sess.Context != nil {
			flags := ""
			if sess.Context.Caffeine {
				flags += " caffeine"
			}
			if sess.Context.SleepDeprived {
				flags += " sleep-deprived"
			}
			if sess.Context.Stress {
				flags += " stress"
			}
			if flags != "" {
				fmt.Printf("    Context:   %s\n", flags)
			}
			if sess.Context.Notes != "" {
				fmt.Printf("    Notes:      %s\n", sess.Context.Notes)
			}
		}
		fmt.Println()
	}

	return nil
}
