package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/export"
	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewExportCmd creates the 'export' command.
func NewExportCmd() *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the session history",
		Long: `Export all sessions as pretty-printed JSON (the full records) or CSV
(one summary row per session).`,
		Example: `  tremorlog export
  tremorlog export --format csv --output sessions.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			defer store.Close()
			return runExport(store, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func runExport(store storage.Store, format, output string) error {
	history, err := store.LoadSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "json":
		err = export.WriteJSON(w, history)
	case "csv":
		err = export.WriteCSV(w, history)
	default:
		return fmt.Errorf("unknown format %q (expected json or csv)", format)
	}
	if err != nil {
		return err
	}

	if output != "" {
		fmt.Printf("Exported %d sessions to %s\n", len(history), output)
	}
	return nil
}
