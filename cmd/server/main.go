// ABOUTME: Main entry point for the notable-facts MCP server with stdio transport
// ABOUTME: Initializes config, storage, classifier, and MCP server with all tools
package main

import (
	"log"
	"os"

	"github.com/harper/notable-facts/internal/config"
	"github.com/harper/notable-facts/internal/core"
	"github.com/harper/notable-facts/internal/llm"
	"github.com/harper/notable-facts/internal/mcp"
	"github.com/harper/notable-facts/internal/storage"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	if os.Getenv("OPENAI_API_KEY") == "" {
		log.Println("Warning: OPENAI_API_KEY not set - fact classification will not work")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := storage.NewStore(&storage.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		log.Fatalf("Failed to open fact store: %v", err)
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
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	server := mcpserver.NewMCPServer(
		"Notable Facts",
		"0.1.0",
	)
	mcp.RegisterTools(server, store, core.NewClassifier(client), cfg.Profile)

	log.Println("notable MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
