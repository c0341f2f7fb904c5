// ABOUTME: Root command setup for the notable-facts CLI
// ABOUTME: Wires subcommands and shared flags
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet   bool
	profile string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notable",
		Short: "Maintain notable facts about a person across conversations",
		Long: `notable keeps a short, bounded list of notable facts about a person,
updated by an LLM classification call after each conversation turn.

Facts are stored in cloud-synced charm KV and capped at 20 entries;
the oldest facts are evicted when the cap is exceeded.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().StringVar(&profile, "profile", "", "Fact profile to operate on (default from FACTS_PROFILE)")

	cmd.AddCommand(NewClassifyCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewForgetCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
