// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to maintain facts via stdio
package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/notable-facts/internal/core"
	"github.com/harper/notable-facts/internal/llm"
	"github.com/harper/notable-facts/internal/mcp"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs notable as an MCP (Model Context Protocol) server, enabling
LLM agents like Claude to maintain notable facts via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by the agent host)
  notable mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "notable": {
  #       "command": "notable",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - fact classification will not work")
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

	server := mcpserver.NewMCPServer(
		"Notable Facts",
		"0.1.0",
	)
	mcp.RegisterTools(server, store, core.NewClassifier(client), activeProfile(cfg))

	log.Println("notable MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
