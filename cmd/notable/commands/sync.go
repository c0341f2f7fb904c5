// ABOUTME: CLI command to sync stored facts with the charm cloud
// ABOUTME: Pushes and pulls the KV database for the current account
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSyncCmd creates the sync command
func NewSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync facts with the charm cloud",
		RunE:  runSync,
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	_, store, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Sync(); err != nil {
		return fmt.Errorf("syncing: %w", err)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "Facts synced")
	}
	return nil
}
