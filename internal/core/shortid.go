// ABOUTME: Short-id mapper producing prompt-safe aliases for durable fact ids
// ABOUTME: Mappings live for exactly one prompt/response cycle and are never persisted
package core

import (
	"math/rand/v2"

	"github.com/harper/notable-facts/internal/models"
)

// ShortIDLength is the length of a prompt-facing fact alias.
const ShortIDLength = 5

const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateShortID returns a 5-character lowercase-alphanumeric token.
// The charset needs no escaping, so tokens embed directly in prompt text.
func GenerateShortID() string {
	b := make([]byte, ShortIDLength)
	for i := range b {
		b[i] = shortIDAlphabet[rand.IntN(len(shortIDAlphabet))]
	}
	return string(b)
}

// IDMapping aliases durable fact ids for one request/response cycle. Short
// ids are not stable across cycles, so a mapping must not be cached or
// reused after its response has been resolved.
type IDMapping struct {
	ShortToFull map[string]string
	FullToShort map[string]string
}

// NewIDMapping assigns a distinct short id to every fact in the snapshot.
// Collisions within the mapping are regenerated; uniqueness is local to the
// call, not global.
func NewIDMapping(facts []models.Fact) *IDMapping {
	m := &IDMapping{
		ShortToFull: make(map[string]string, len(facts)),
		FullToShort: make(map[string]string, len(facts)),
	}

	for _, f := range facts {
		short := GenerateShortID()
		for {
			if _, taken := m.ShortToFull[short]; !taken {
				break
			}
			short = GenerateShortID()
		}
		m.ShortToFull[short] = f.ID
		m.FullToShort[f.ID] = short
	}

	return m
}

// Resolve translates a short id back to its durable id. Unknown ids pass
// through unchanged: they may already be durable, or reference nothing,
// which reconciliation treats as insert or no-op respectively.
func (m *IDMapping) Resolve(id string) string {
	if full, ok := m.ShortToFull[id]; ok {
		return full
	}
	return id
}

// ResolveShortIDs rewrites every upsert and delete id in the payload through
// the mapping. Upsert entries without an id stay without one. The payload is
// not mutated.
func ResolveShortIDs(payload *FactUpdate, m *IDMapping) *FactUpdate {
	if payload == nil {
		return nil
	}

	out := &FactUpdate{
		Upsert: make([]FactUpsert, len(payload.Upsert)),
		Delete: make([]string, len(payload.Delete)),
	}
	for i, u := range payload.Upsert {
		if u.ID != "" {
			u.ID = m.Resolve(u.ID)
		}
		out.Upsert[i] = u
	}
	for i, id := range payload.Delete {
		out.Delete[i] = m.Resolve(id)
	}
	return out
}
