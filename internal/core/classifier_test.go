// ABOUTME: Tests for the end-to-end classification cycle runner
// ABOUTME: Uses a fake generator client to cover success, failure, and no-op paths
package core

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"

	"github.com/harper/notable-facts/internal/models"
)

// fakeCompleter records the prompts it receives and replies with a canned
// response or error
type fakeCompleter struct {
	systemPrompt string
	userPrompt   string
	response     map[string]interface{}
	err          error
}

func (f *fakeCompleter) Classify(systemPrompt, userPrompt string) (map[string]interface{}, error) {
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestClassifier_Run_AppliesDiff(t *testing.T) {
	existing := []models.Fact{{ID: "fact-1", Category: "People", Fact: "A"}}
	fake := &fakeCompleter{response: map[string]interface{}{
		"upsert": []interface{}{
			map[string]interface{}{"category": "Logistics", "fact": "Moving in June"},
		},
		"delete": []interface{}{},
	}}

	got, changed, err := NewClassifier(fake).Run(existing, "we are moving in june")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !changed {
		t.Error("diff response should report changed")
	}
	if len(got) != 2 {
		t.Fatalf("length = %d, want 2", len(got))
	}
	if got[1].Fact != "Moving in June" {
		t.Errorf("got[1] = %+v", got[1])
	}
	if fake.systemPrompt != ClassifySystemPrompt {
		t.Error("classifier should send the classification system prompt")
	}
}

func TestClassifier_Run_ResolvesShortIDs(t *testing.T) {
	existing := []models.Fact{{ID: "fact-1", Category: "People", Fact: "A"}}

	// First run only to capture the short id from the rendered prompt
	probe := &fakeCompleter{response: map[string]interface{}{}}
	if _, _, err := NewClassifier(probe).Run(existing, "hi"); err != nil {
		t.Fatalf("probe run error = %v", err)
	}
	re := regexp.MustCompile(`\[([a-z0-9]{5})\]`)
	match := re.FindStringSubmatch(probe.userPrompt)
	if match == nil {
		t.Fatalf("no short id rendered in prompt:\n%s", probe.userPrompt)
	}

	// A second cycle gets its own mapping, so drive one cycle manually: the
	// fake replies with whatever short id its prompt contained.
	fake := &replayCompleter{}
	got, changed, err := NewClassifier(fake).Run(existing, "actually delete that")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !changed {
		t.Error("delete diff should report changed")
	}
	if len(got) != 0 {
		t.Errorf("fact should be deleted via its short id, got %+v", got)
	}
}

// replayCompleter deletes the first short id it sees in its own prompt
type replayCompleter struct{}

func (r *replayCompleter) Classify(systemPrompt, userPrompt string) (map[string]interface{}, error) {
	match := regexp.MustCompile(`\[([a-z0-9]{5})\]`).FindStringSubmatch(userPrompt)
	if match == nil {
		return nil, fmt.Errorf("no short id in prompt")
	}
	return map[string]interface{}{
		"upsert": []interface{}{},
		"delete": []interface{}{match[1]},
	}, nil
}

func TestClassifier_Run_GeneratorFailure(t *testing.T) {
	existing := []models.Fact{{ID: "fact-1", Category: "People", Fact: "A"}}
	fake := &fakeCompleter{err: fmt.Errorf("timeout")}

	got, changed, err := NewClassifier(fake).Run(existing, "hello")

	if err == nil {
		t.Fatal("Run() should surface the generator error")
	}
	if changed {
		t.Error("failed call must not report changed")
	}
	// Existing facts survive a failed call
	if !reflect.DeepEqual(got, existing) {
		t.Errorf("failed call should keep existing facts, got %+v", got)
	}
}

func TestClassifier_Run_NoFactsResponse(t *testing.T) {
	existing := []models.Fact{{ID: "fact-1", Category: "People", Fact: "A"}}
	fake := &fakeCompleter{response: map[string]interface{}{"topicContext": "x"}}

	got, changed, err := NewClassifier(fake).Run(existing, "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if changed {
		t.Error("no-facts response must not report changed")
	}
	if !reflect.DeepEqual(got, existing) {
		t.Errorf("facts should be untouched, got %+v", got)
	}
}

func TestClassifier_Run_NormalizesLegacyFacts(t *testing.T) {
	existing := []models.Fact{{Category: "People", Fact: "A"}} // persisted before ids existed
	fake := &fakeCompleter{response: map[string]interface{}{}}

	got, _, err := NewClassifier(fake).Run(existing, "hello")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(got) != 1 || got[0].ID == "" {
		t.Errorf("legacy fact should be normalized with an id, got %+v", got)
	}
}
