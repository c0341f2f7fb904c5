// ABOUTME: CLI command to run one fact classification cycle
// ABOUTME: Reads a conversation turn from args, file, or stdin
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/notable-facts/internal/core"
	"github.com/harper/notable-facts/internal/llm"
)

var classifyFile string

// NewClassifyCmd creates the classify command
func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Update notable facts from a conversation turn",
		Long: `Update notable facts from a conversation turn.

Runs one classification cycle: the current facts are shown to the model
under short per-cycle aliases, its diff response is validated and merged,
and the result is stored. When the turn carries nothing notable the
stored facts stay untouched.

Examples:
  notable classify "My daughter starts school in September"
  notable classify --file turn.txt
  cat turn.txt | notable classify`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringVar(&classifyFile, "file", "", "Read the conversation turn from file")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	var text string
	if classifyFile != "" {
		data, err := os.ReadFile(classifyFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no conversation text provided")
	}

	cfg, store, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		ChatModel:  cfg.ChatModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("creating OpenAI client: %w", err)
	}

	prof := activeProfile(cfg)
	existing, err := store.LoadFacts(prof)
	if err != nil {
		return fmt.Errorf("loading facts: %w", err)
	}

	facts, changed, err := core.NewClassifier(client).Run(existing, text)
	if err != nil {
		// Stored facts stay as they are on a failed call
		return fmt.Errorf("classification failed, facts unchanged: %w", err)
	}

	if changed {
		if err := store.SaveFacts(prof, facts); err != nil {
			return fmt.Errorf("saving facts: %w", err)
		}
	}

	if !quiet {
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "Facts updated (%d stored)\n", len(facts))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Nothing notable; facts unchanged (%d stored)\n", len(facts))
		}
	}
	return nil
}
