// ABOUTME: MCP tool definitions and registration for the notable-facts server
// ABOUTME: Defines JSON schemas for the fact memory tools
package mcp

import (
	"github.com/harper/notable-facts/internal/core"
	"github.com/harper/notable-facts/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, store *storage.Store, classifier *core.Classifier, profile string) *Handlers {
	handlers := &Handlers{
		store:      store,
		classifier: classifier,
		profile:    profile,
	}

	// 1. remember_turn - run one fact classification cycle over a conversation turn
	server.AddTool(mcp.Tool{
		Name:        "remember_turn",
		Description: "Update the notable facts about the user from one conversation turn. Adds, updates, and removes facts as needed; stored facts are kept unchanged when the turn carries nothing notable.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"message": map[string]interface{}{
					"type":        "string",
					"description": "User message from the turn",
				},
				"response": map[string]interface{}{
					"type":        "string",
					"description": "Optional assistant response from the turn",
				},
			},
			Required: []string{"message"},
		},
	}, handlers.RememberTurn)

	// 2. list_facts - return the current fact set
	server.AddTool(mcp.Tool{
		Name:        "list_facts",
		Description: "List the notable facts currently stored about the user.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ListFacts)

	// 3. forget_fact - delete one fact by durable id
	server.AddTool(mcp.Tool{
		Name:        "forget_fact",
		Description: "Remove one notable fact by its id.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Durable id of the fact to remove",
				},
			},
			Required: []string{"id"},
		},
	}, handlers.ForgetFact)

	// 4. sync_facts - push/pull the fact set with the charm cloud
	server.AddTool(mcp.Tool{
		Name:        "sync_facts",
		Description: "Sync stored facts with the charm cloud backend.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.SyncFacts)

	return handlers
}
