// ABOUTME: Classifier runs one fact reconciliation cycle end to end
// ABOUTME: Normalize, alias, prompt, classify, reconcile, snapshot out
package core

import (
	"fmt"

	"github.com/harper/notable-facts/internal/models"
)

// ChatCompleter is the generator call this engine depends on. Implementations
// return the parsed JSON response object, or an error on failure or timeout.
type ChatCompleter interface {
	Classify(systemPrompt, userPrompt string) (map[string]interface{}, error)
}

// Classifier orchestrates one classification cycle over a conversation turn.
// It holds no per-cycle state; every mapping and working set is built fresh
// inside Run, so concurrent cycles for different fact sets are independent.
// Serializing overlapping cycles for the same fact set is the caller's job.
type Classifier struct {
	client ChatCompleter
}

// NewClassifier creates a Classifier backed by the given generator client
func NewClassifier(client ChatCompleter) *Classifier {
	return &Classifier{client: client}
}

// Run executes one reconciliation cycle: normalize ids, build a short-id
// mapping, prompt the model, and reconcile its response onto the snapshot.
// The changed flag is false when the response carried no facts information.
// On generator failure the normalized existing facts are returned unchanged
// alongside the error, so a failed call can never clear stored facts.
func (c *Classifier) Run(existing []models.Fact, conversation string) ([]models.Fact, bool, error) {
	facts := EnsureFactIDs(existing)
	mapping := NewIDMapping(facts)

	raw, err := c.client.Classify(ClassifySystemPrompt, BuildFactPrompt(facts, mapping, conversation))
	if err != nil {
		return facts, false, fmt.Errorf("classifying facts: %w", err)
	}

	updated, changed := ReconcileResponse(facts, raw, mapping)
	return updated, changed, nil
}
