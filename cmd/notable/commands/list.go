// ABOUTME: CLI command to list stored notable facts
// ABOUTME: Shows id, category, and fact text in table or JSON form
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listFormat string

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored notable facts",
		Long: `List the notable facts stored for the active profile.

Examples:
  notable list
  notable list --format json
  notable list --profile harper`,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table or json")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, store, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	facts, err := store.LoadFacts(activeProfile(cfg))
	if err != nil {
		return fmt.Errorf("loading facts: %w", err)
	}

	if listFormat == "json" {
		data, err := json.MarshalIndent(facts, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding facts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if len(facts) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No facts stored")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tFACT")
	for _, f := range facts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.ID, f.Category, truncate(f.Fact, 60))
	}
	return w.Flush()
}
