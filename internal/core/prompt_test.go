// ABOUTME: Tests for classification prompt rendering
// ABOUTME: Verifies short-id lines and that durable ids never leak into prompts
package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/harper/notable-facts/internal/models"
)

func TestBuildFactPrompt(t *testing.T) {
	facts := []models.Fact{
		{ID: "fact_11111111-1111-1111-1111-111111111111", Category: "People", Fact: "User has a daughter"},
		{ID: "fact_22222222-2222-2222-2222-222222222222", Category: "Logistics", Fact: "Moving in June"},
	}
	mapping := NewIDMapping(facts)

	prompt := BuildFactPrompt(facts, mapping, "I told you about my daughter")

	for _, f := range facts {
		short := mapping.FullToShort[f.ID]
		line := fmt.Sprintf("[%s] %s: %s", short, f.Category, f.Fact)
		if !strings.Contains(prompt, line) {
			t.Errorf("prompt missing line %q:\n%s", line, prompt)
		}
		if strings.Contains(prompt, f.ID) {
			t.Errorf("durable id %s leaked into the prompt", f.ID)
		}
	}
	if !strings.Contains(prompt, "I told you about my daughter") {
		t.Error("prompt should include the conversation text")
	}
}

func TestBuildFactPrompt_NoFacts(t *testing.T) {
	prompt := BuildFactPrompt(nil, NewIDMapping(nil), "hello")

	if !strings.Contains(prompt, "none") {
		t.Errorf("empty fact set should render as none:\n%s", prompt)
	}
}

func TestClassifySystemPrompt_Contract(t *testing.T) {
	// The instructions must pin the diff contract and the exact-id rule
	for _, want := range []string{"upsert", "delete", "5-character", "ONLY"} {
		if !strings.Contains(ClassifySystemPrompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
