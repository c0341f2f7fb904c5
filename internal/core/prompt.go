// ABOUTME: Builds the fact classification prompt for the LLM call
// ABOUTME: Renders existing facts with short-id aliases, never durable ids
package core

import (
	"fmt"
	"strings"

	"github.com/harper/notable-facts/internal/models"
)

// ClassifySystemPrompt instructs the model to answer with the diff contract.
const ClassifySystemPrompt = `You maintain a short list of notable facts about the user.

Given the current facts and the latest conversation, respond with ONLY a JSON object describing changes:
{"upsert": [{"id": "ab123", "category": "People", "fact": "..."}], "delete": ["cd456"]}

Rules:
- To update or delete an existing fact, copy the exact 5-character ID shown in brackets next to it.
- Omit the id field entirely for new facts.
- Consolidate: update an existing fact instead of adding a near-duplicate.
- Keep each fact to one short sentence with a one-word category (People, Logistics, Emotional, Health, Work, General).
- Return {"upsert": [], "delete": []} when nothing notable changed.

Return ONLY the JSON object. No additional text.`

// BuildFactPrompt renders the user prompt for one classification cycle.
// Each existing fact appears as a "[shortid] category: fact" line keyed by
// its per-cycle alias; the durable id never enters the prompt.
func BuildFactPrompt(facts []models.Fact, mapping *IDMapping, conversation string) string {
	var b strings.Builder

	if len(facts) == 0 {
		b.WriteString("Current notable facts: none\n")
	} else {
		b.WriteString("Current notable facts:\n")
		for _, f := range facts {
			fmt.Fprintf(&b, "[%s] %s: %s\n", mapping.FullToShort[f.ID], f.Category, f.Fact)
		}
	}

	b.WriteString("\nConversation:\n")
	b.WriteString(conversation)

	return b.String()
}
