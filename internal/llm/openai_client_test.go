// ABOUTME: Tests for OpenAI client configuration and response cleanup
// ABOUTME: Verifies config defaults and markdown fence stripping
package llm

import (
	"os"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	os.Unsetenv("FACTS_OPENAI_MODEL")

	cfg := DefaultConfig("test-key")

	if cfg.APIKey != "test-key" {
		t.Errorf("APIKey = %s, want test-key", cfg.APIKey)
	}
	if cfg.ChatModel != DefaultChatModel {
		t.Errorf("ChatModel = %s, want %s", cfg.ChatModel, DefaultChatModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
}

func TestDefaultConfig_ModelOverride(t *testing.T) {
	os.Setenv("FACTS_OPENAI_MODEL", "gpt-4")
	defer os.Unsetenv("FACTS_OPENAI_MODEL")

	cfg := DefaultConfig("test-key")
	if cfg.ChatModel != "gpt-4" {
		t.Errorf("ChatModel = %s, want gpt-4", cfg.ChatModel)
	}
}

func TestNewOpenAIClient_RequiresKey(t *testing.T) {
	if _, err := NewOpenAIClient(""); err == nil {
		t.Error("empty API key should fail")
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON untouched",
			input: `{"upsert": []}`,
			want:  `{"upsert": []}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"upsert\": []}\n```",
			want:  `{"upsert": []}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"delete\": []}\n```",
			want:  `{"delete": []}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n{}\n```  ",
			want:  `{}`,
		},
		{
			name:  "uppercase language tag",
			input: "```JSON\n{\"upsert\": []}\n```",
			want:  `{"upsert": []}`,
		},
		{
			name:  "language tag with space",
			input: "``` json\n{\"delete\": []}\n```",
			want:  `{"delete": []}`,
		},
		{
			name:  "single line fence",
			input: "```{}```",
			want:  `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.input); got != tt.want {
				t.Errorf("StripCodeFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
