// ABOUTME: CLI command to remove one stored fact by id
// ABOUTME: Applies a delete-only diff and writes the set back wholesale
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/notable-facts/internal/core"
)

// NewForgetCmd creates the forget command
func NewForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <fact-id>",
		Short: "Remove one notable fact by id",
		Long: `Remove one notable fact by its durable id.

Use "notable list" to see the stored ids.`,
		Args: cobra.ExactArgs(1),
		RunE: runForget,
	}
}

func runForget(cmd *cobra.Command, args []string) error {
	cfg, store, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	prof := activeProfile(cfg)
	existing, err := store.LoadFacts(prof)
	if err != nil {
		return fmt.Errorf("loading facts: %w", err)
	}

	facts := core.ApplyFactUpdates(existing, &core.FactUpdate{Delete: []string{args[0]}})
	if len(facts) == len(existing) {
		return fmt.Errorf("no fact with id %s", args[0])
	}

	if err := store.SaveFacts(prof, facts); err != nil {
		return fmt.Errorf("saving facts: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Forgot fact %s (%d remaining)\n", args[0], len(facts))
	}
	return nil
}
