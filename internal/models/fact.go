// ABOUTME: Fact represents one notable fact about the user
// ABOUTME: Persisted as an ordered JSON array capped at MaxFacts entries
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MaxFacts is the soft cap on retained notable facts. Reconciliation evicts
// from the front (oldest by position) when the cap is exceeded.
const MaxFacts = 20

// Fact is a short, categorized natural-language statement about the user.
// The ID is durable and storage-level; it never appears in prompts.
type Fact struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Fact     string `json:"fact"`
}

// NewFactID generates a durable fact identifier
func NewFactID() string {
	return "fact_" + uuid.New().String()
}

// NewFact creates a fact with a freshly generated durable id.
// Category and fact text must be non-empty after trimming.
func NewFact(category, fact string) (*Fact, error) {
	category = strings.TrimSpace(category)
	fact = strings.TrimSpace(fact)

	if category == "" || fact == "" {
		return nil, fmt.Errorf("category and fact cannot be empty")
	}

	return &Fact{
		ID:       NewFactID(),
		Category: category,
		Fact:     fact,
	}, nil
}

// Valid reports whether category and fact text are non-empty after trimming.
// Every fact that survives into a persisted set must satisfy this.
func (f Fact) Valid() bool {
	return strings.TrimSpace(f.Category) != "" && strings.TrimSpace(f.Fact) != ""
}

// CloneFacts returns a copy of the slice so reconciliation never mutates the
// caller's snapshot. Nil input stays nil.
func CloneFacts(facts []Fact) []Fact {
	if facts == nil {
		return nil
	}
	out := make([]Fact, len(facts))
	copy(out, facts)
	return out
}
