package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tremorlog/tremorlog/internal/storage"
)

// NewDeleteCmd creates the 'delete' command.
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <session-id>...",
		Aliases: []string{"rm"},
		Short:   "Delete one or more sessions",
		Args:    cobra.MinimumNArgs(1),
		Example: `  tremorlog delete 1785578400000-abcd1234
  tremorlog rm 1785578400000-abcd1234 1785664800000-ef567890`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := openStore()
			defer store.Close()
			return runDelete(store, args)
		},
	}

	return cmd
}

func runDelete(store storage.Store, ids []string) error {
	var err error
	if len(ids) == 1 {
		err = store.DeleteSession(ids[0])
	} else {
		err = store.DeleteSessions(ids)
	}
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}

	fmt.Printf("Deleted %d session(s).\n", len(ids))
	return nil
}

// NewClearCmd creates the 'clear' command.
func NewClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "clear",
		Short:   "Delete the entire session history",
		Example: `  tremorlog clear --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to clear all sessions without --force")
			}
			store := openStore()
			defer store.Close()
			return runClear(store)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm deleting every session")

	return cmd
}

func runClear(store storage.Store) error {
	if err := store.ClearSessions(); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	fmt.Println("Session history cleared.")
	return nil
}
