package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/search"
	"github.com/tremorlog/tremorlog/internal/session"
	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewSearchCmd creates the 'search' command.
func NewSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search sessions by notes and context",
		Long: `Keyword search over session notes and context flags. The index is
rebuilt from the store on each invocation.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  tremorlog search espresso
  tremorlog search caffeine --limit 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			defer store.Close()
			return runSearch(store, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum number of results")

	return cmd
}

func runSearch(store storage.Store, query string, limit int) error {
	history, err := store.LoadSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	if len(history) == 0 {
		fmt.Println("No sessions to search.")
		return nil
	}

	indexer, err := search.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to build search index: %w", err)
	}
	defer indexer.Close()

	if err := indexer.IndexSessions(history); err != nil {
		return fmt.Errorf("failed to index sessions: %w", err)
	}

	results, err := indexer.Search(query, limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(results) == 0 {
		fmt.Printf("No sessions match %q.\n", query)
		return nil
	}

	byID := make(map[string]session.RecordingSession, len(history))
	for _, sess := range history {
		byID[sess.ID] = sess
	}

	fmt.Printf("Matching sessions (%d):\n\n", len(results))
	for _, r := range results {
		fmt.Printf("  %s\n", r.SessionID)
		if sess, ok := byID[r.SessionID]; ok {
			fmt.Printf("    Recorded:    %s\n", sess.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("    Variability: %.4f\n", sess.Stats.Variability)
			if sess.Context != nil && sess.Context.Notes != "" {
				fmt.Printf("    Notes:       %s\n", sess.Context.Notes)
			}
		}
		fmt.Println()
	}

	return nil
}
