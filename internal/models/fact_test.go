// ABOUTME: Tests for Fact model creation and validation
// ABOUTME: Verifies NewFact constructor, Valid, and CloneFacts
package models

import (
	"strings"
	"testing"
)

func TestNewFact(t *testing.T) {
	tests := []struct {
		name     string
		category string
		fact     string
		wantErr  bool
	}{
		{
			name:     "valid fact",
			category: "People",
			fact:     "User has a daughter",
			wantErr:  false,
		},
		{
			name:     "fields trimmed",
			category: "  Logistics ",
			fact:     " Moving to Chicago in June\n",
			wantErr:  false,
		},
		{
			name:     "empty category",
			category: "",
			fact:     "User has a daughter",
			wantErr:  true,
		},
		{
			name:     "empty fact",
			category: "People",
			fact:     "",
			wantErr:  true,
		},
		{
			name:     "whitespace-only category",
			category: "   ",
			fact:     "User has a daughter",
			wantErr:  true,
		},
		{
			name:     "whitespace-only fact",
			category: "Emotional",
			fact:     " \t\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fact, err := NewFact(tt.category, tt.fact)

			if (err != nil) != tt.wantErr {
				t.Errorf("NewFact() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}

			if fact == nil {
				t.Fatal("NewFact() returned nil fact without error")
			}
			if fact.Category != strings.TrimSpace(tt.category) {
				t.Errorf("Category = %q, want %q", fact.Category, strings.TrimSpace(tt.category))
			}
			if fact.Fact != strings.TrimSpace(tt.fact) {
				t.Errorf("Fact = %q, want %q", fact.Fact, strings.TrimSpace(tt.fact))
			}
			if fact.ID == "" {
				t.Error("ID should be generated")
			}
			if !strings.HasPrefix(fact.ID, "fact_") {
				t.Errorf("ID = %q, should start with 'fact_'", fact.ID)
			}
			if !fact.Valid() {
				t.Error("constructed fact should be valid")
			}
		})
	}
}

func TestNewFact_UniqueIDs(t *testing.T) {
	ids := make(map[string]bool)

	for i := 0; i < 10; i++ {
		fact, err := NewFact("People", "User has a daughter")
		if err != nil {
			t.Fatalf("NewFact() error = %v", err)
		}
		if ids[fact.ID] {
			t.Errorf("Duplicate ID generated: %s", fact.ID)
		}
		ids[fact.ID] = true
	}
}

func TestFact_Valid(t *testing.T) {
	tests := []struct {
		name string
		fact Fact
		want bool
	}{
		{"both set", Fact{ID: "fact_1", Category: "People", Fact: "A"}, true},
		{"empty category", Fact{ID: "fact_1", Category: "", Fact: "A"}, false},
		{"empty fact", Fact{ID: "fact_1", Category: "People", Fact: ""}, false},
		{"whitespace only", Fact{ID: "fact_1", Category: " ", Fact: "\t"}, false},
		{"missing id still valid", Fact{Category: "People", Fact: "A"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fact.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneFacts(t *testing.T) {
	original := []Fact{
		{ID: "fact_1", Category: "People", Fact: "A"},
		{ID: "fact_2", Category: "Logistics", Fact: "B"},
	}

	clone := CloneFacts(original)

	if len(clone) != len(original) {
		t.Fatalf("clone length = %d, want %d", len(clone), len(original))
	}

	clone[0].Fact = "mutated"
	if original[0].Fact != "A" {
		t.Error("mutating the clone changed the original")
	}
}

func TestCloneFacts_Nil(t *testing.T) {
	if got := CloneFacts(nil); got != nil {
		t.Errorf("CloneFacts(nil) = %v, want nil", got)
	}
}
