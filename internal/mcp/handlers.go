// ABOUTME: MCP tool handler implementations for the notable-facts server
// ABOUTME: Each handler runs against the stored fact set for one profile
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/notable-facts/internal/core"
	"github.com/harper/notable-facts/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store      *storage.Store
	classifier *core.Classifier
	profile    string
}

// RememberTurn handles the remember_turn tool. It loads the stored set,
// runs one classification cycle, and writes the result back only when the
// response actually carried facts information.
func (h *Handlers) RememberTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("message argument is required and must be a string"), nil
	}
	response := request.GetString("response", "")

	conversation := "User: " + message
	if response != "" {
		conversation += "\nAI: " + response
	}

	existing, err := h.store.LoadFacts(h.profile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load facts: %v", err)), nil
	}

	facts, changed, err := h.classifier.Run(existing, conversation)
	if err != nil {
		// Existing facts stay as they are; a failed call never clears memory
		return mcp.NewToolResultError(fmt.Sprintf("classification failed, facts unchanged: %v", err)), nil
	}

	if changed {
		if err := h.store.SaveFacts(h.profile, facts); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save facts: %v", err)), nil
		}
	}

	result := map[string]interface{}{
		"changed":    changed,
		"fact_count": len(facts),
	}
	return jsonResult(result)
}

// ListFacts handles the list_facts tool
func (h *Handlers) ListFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	facts, err := h.store.LoadFacts(h.profile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load facts: %v", err)), nil
	}

	result := map[string]interface{}{
		"facts":      facts,
		"fact_count": len(facts),
	}
	return jsonResult(result)
}

// ForgetFact handles the forget_fact tool by applying a delete-only diff
func (h *Handlers) ForgetFact(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required and must be a string"), nil
	}

	existing, err := h.store.LoadFacts(h.profile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load facts: %v", err)), nil
	}

	facts := core.ApplyFactUpdates(existing, &core.FactUpdate{Delete: []string{id}})
	if len(facts) == len(existing) {
		return mcp.NewToolResultText(fmt.Sprintf("no fact with id %s", id)), nil
	}

	if err := h.store.SaveFacts(h.profile, facts); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to save facts: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("forgot fact %s (%d remaining)", id, len(facts))), nil
}

// SyncFacts handles the sync_facts tool
func (h *Handlers) SyncFacts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.store.Sync(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sync failed: %v", err)), nil
	}
	return mcp.NewToolResultText("facts synced"), nil
}

// jsonResult marshals a result payload into a text tool result
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
