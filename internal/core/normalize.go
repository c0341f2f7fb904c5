// ABOUTME: Normalizes fact sets persisted before durable ids existed
// ABOUTME: Assigns fresh unique ids to any fact missing one, preserving order
package core

import "github.com/harper/notable-facts/internal/models"

// EnsureFactIDs returns a copy of facts where every entry carries a durable
// id. Nil input yields an empty set. Generated ids are unique against both
// the ids already present in the input and ids generated earlier in the same
// call. Order is preserved and existing facts pass through unchanged.
func EnsureFactIDs(facts []models.Fact) []models.Fact {
	if facts == nil {
		return []models.Fact{}
	}

	used := make(map[string]bool, len(facts))
	for _, f := range facts {
		if f.ID != "" {
			used[f.ID] = true
		}
	}

	out := make([]models.Fact, len(facts))
	for i, f := range facts {
		if f.ID == "" {
			id := models.NewFactID()
			for used[id] {
				id = models.NewFactID()
			}
			used[id] = true
			f.ID = id
		}
		out[i] = f
	}
	return out
}
