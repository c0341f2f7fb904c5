// ABOUTME: Reconciliation engine merging classifier diffs onto a fact set
// ABOUTME: Includes the legacy full-list fallback and top-level dispatch
package core

import (
	"strings"

	"github.com/harper/notable-facts/internal/models"
)

// ApplyFactUpdates merges a validated diff onto the existing fact set and
// returns a new snapshot; inputs are never mutated.
//
// A nil payload is identity. Upserts whose id matches an element of the
// working set update that element in place, keeping its position and id;
// everything else appends a new fact with a fresh durable id. Deletes run
// after upserts and silently ignore unknown ids. When the result exceeds
// models.MaxFacts, the oldest entries are evicted from the front.
func ApplyFactUpdates(existing []models.Fact, payload *FactUpdate) []models.Fact {
	result := models.CloneFacts(existing)
	if result == nil {
		result = []models.Fact{}
	}
	if payload == nil {
		return result
	}

	index := make(map[string]int, len(result))
	used := make(map[string]bool, len(result))
	for i, f := range result {
		index[f.ID] = i
		used[f.ID] = true
	}

	for _, u := range payload.Upsert {
		category := strings.TrimSpace(u.Category)
		fact := strings.TrimSpace(u.Fact)
		if category == "" || fact == "" {
			continue
		}

		if u.ID != "" {
			if i, ok := index[u.ID]; ok {
				result[i].Category = category
				result[i].Fact = fact
				continue
			}
		}

		id := models.NewFactID()
		for used[id] {
			id = models.NewFactID()
		}
		used[id] = true
		index[id] = len(result)
		result = append(result, models.Fact{ID: id, Category: category, Fact: fact})
	}

	deletes := make(map[string]bool, len(payload.Delete))
	for _, id := range payload.Delete {
		if id = strings.TrimSpace(id); id != "" {
			deletes[id] = true
		}
	}
	if len(deletes) > 0 {
		kept := result[:0]
		for _, f := range result {
			if !deletes[f.ID] {
				kept = append(kept, f)
			}
		}
		result = kept
	}

	if len(result) > models.MaxFacts {
		result = result[len(result)-models.MaxFacts:]
	}

	return result
}

// ReplaceFromLegacy converts a legacy full-list response into a new fact
// set: the first models.MaxFacts valid entries, each with a fresh durable
// id. Legacy responses replace the stored set outright, they never merge.
func ReplaceFromLegacy(entries []FactUpsert) []models.Fact {
	facts := make([]models.Fact, 0, len(entries))
	used := make(map[string]bool, len(entries))

	for _, e := range entries {
		if len(facts) == models.MaxFacts {
			break
		}
		category := strings.TrimSpace(e.Category)
		fact := strings.TrimSpace(e.Fact)
		if category == "" || fact == "" {
			continue
		}

		id := models.NewFactID()
		for used[id] {
			id = models.NewFactID()
		}
		used[id] = true
		facts = append(facts, models.Fact{ID: id, Category: category, Fact: fact})
	}

	return facts
}

// ReconcileResponse dispatches a raw classifier response against the prior
// fact set. Short ids in a diff are resolved through the mapping first. The
// returned flag reports whether the response carried any facts information;
// when it is false callers must keep their stored facts as-is rather than
// writing the unchanged snapshot back.
func ReconcileResponse(existing []models.Fact, raw map[string]interface{}, mapping *IDMapping) ([]models.Fact, bool) {
	parsed := ParseResponse(raw)

	switch parsed.Kind {
	case ResponseDiff:
		diff := parsed.Diff
		if mapping != nil {
			diff = ResolveShortIDs(diff, mapping)
		}
		return ApplyFactUpdates(existing, diff), true
	case ResponseLegacy:
		return ReplaceFromLegacy(parsed.Legacy), true
	default:
		return ApplyFactUpdates(existing, nil), false
	}
}
