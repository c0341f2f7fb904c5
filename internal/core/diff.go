// ABOUTME: Narrows untrusted classifier responses into a closed set of shapes
// ABOUTME: Filters malformed diff entries and legacy fact lists defensively
package core

import "strings"

// FactUpsert is one add-or-update entry in a diff payload. An empty ID means
// insert; an id matching an existing fact means in-place update. Before
// resolution the id may be a short alias rather than a durable id.
type FactUpsert struct {
	ID       string `json:"id,omitempty"`
	Category string `json:"category"`
	Fact     string `json:"fact"`
}

// FactUpdate is the diff-shaped contract returned by the classifier.
type FactUpdate struct {
	Upsert []FactUpsert `json:"upsert"`
	Delete []string     `json:"delete"`
}

// ResponseKind identifies which contract a classifier response follows.
type ResponseKind int

const (
	// ResponseNone means the response carries no facts information, for
	// example a topic-context-only reply. The stored set must stay untouched.
	ResponseNone ResponseKind = iota
	// ResponseDiff means the response carries an upsert/delete diff.
	ResponseDiff
	// ResponseLegacy means the response carries a full notableFacts
	// replacement list from the pre-diff prompt contract.
	ResponseLegacy
)

// ParsedResponse is the narrowed form of a raw classifier response.
type ParsedResponse struct {
	Kind   ResponseKind
	Diff   *FactUpdate  // set when Kind == ResponseDiff
	Legacy []FactUpsert // set when Kind == ResponseLegacy, ids always empty
}

// ParseResponse narrows an untrusted classifier response. Detection order:
// array-typed upsert/delete keys win, then a notableFacts array, otherwise
// the response has nothing to say about facts. Malformed entries are dropped
// individually and never abort the rest.
func ParseResponse(raw map[string]interface{}) ParsedResponse {
	if raw == nil {
		return ParsedResponse{Kind: ResponseNone}
	}

	upsert, hasUpsert := raw["upsert"].([]interface{})
	del, hasDelete := raw["delete"].([]interface{})
	if hasUpsert || hasDelete {
		return ParsedResponse{Kind: ResponseDiff, Diff: parseDiff(upsert, del)}
	}

	if legacy, ok := raw["notableFacts"].([]interface{}); ok {
		return ParsedResponse{Kind: ResponseLegacy, Legacy: parseLegacy(legacy)}
	}

	return ParsedResponse{Kind: ResponseNone}
}

// parseDiff keeps upsert entries that are objects with non-empty string
// category and fact, and delete entries that are non-empty strings.
// Surviving fields are trimmed.
func parseDiff(upsert, del []interface{}) *FactUpdate {
	out := &FactUpdate{}

	for _, entry := range upsert {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		category, _ := obj["category"].(string)
		fact, _ := obj["fact"].(string)
		category = strings.TrimSpace(category)
		fact = strings.TrimSpace(fact)
		if category == "" || fact == "" {
			continue
		}

		u := FactUpsert{Category: category, Fact: fact}
		if id, ok := obj["id"].(string); ok {
			u.ID = strings.TrimSpace(id)
		}
		out.Upsert = append(out.Upsert, u)
	}

	for _, entry := range del {
		id, ok := entry.(string)
		if !ok {
			continue
		}
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		out.Delete = append(out.Delete, id)
	}

	return out
}

// legacyDefaultCategory labels bare-string entries from the oldest response
// contract, which carried fact text only.
const legacyDefaultCategory = "General"

// parseLegacy accepts the oldest contract: notableFacts as either
// {category, fact} objects or bare strings.
func parseLegacy(entries []interface{}) []FactUpsert {
	var out []FactUpsert

	for _, entry := range entries {
		switch v := entry.(type) {
		case string:
			if fact := strings.TrimSpace(v); fact != "" {
				out = append(out, FactUpsert{Category: legacyDefaultCategory, Fact: fact})
			}
		case map[string]interface{}:
			category, _ := v["category"].(string)
			fact, _ := v["fact"].(string)
			category = strings.TrimSpace(category)
			fact = strings.TrimSpace(fact)
			if category == "" || fact == "" {
				continue
			}
			out = append(out, FactUpsert{Category: category, Fact: fact})
		}
	}

	return out
}
