package llm

import (
	"testing"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"domain\": \"c2fo.com\"}\n```",
			expected: `{"domain": "c2fo.com"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"domain\": \"c2fo.com\"}\n```",
			expected: `{"domain": "c2fo.com"}`,
		},
		{
			name:     "code block with language identifier",
			input:    "```javascript\n{\"domain\": \"c2fo.com\"}\n```",
			expected: `{"domain": "c2fo.com"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"domain": "c2fo.com"}`,
			expected: `{"domain": "c2fo.com"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n[\"a\", \"b\"]\n  ",
			expected: `["a", "b"]`,
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestConfig_GetModel(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.GetModel(TierLite) == "" {
		t.Error("expected a model for TierLite")
	}
	if cfg.GetModel(TierStandard) == "" {
		t.Error("expected a model for TierStandard")
	}

	// Unknown tier falls back to standard
	if got, want := cfg.GetModel(ModelTier("unknown")), cfg.GetModel(TierStandard); got != want {
		t.Errorf("fallback model = %q, want %q", got, want)
	}
}

func TestConfig_WithModel(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.WithModel(TierLite, "gemini-custom")

	if custom.GetModel(TierLite) != "gemini-custom" {
		t.Errorf("WithModel did not override tier: %q", custom.GetModel(TierLite))
	}
	if cfg.GetModel(TierLite) == "gemini-custom" {
		t.Error("WithModel mutated the original config")
	}
}

func TestNewGeminiClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiClient(t.Context(), DefaultConfig(), "")
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}
