package polish

import (
	"strings"
	"testing"
)

func TestNewAdapter(t *testing.T) {
	if _, err := NewAdapter(Config{APIKey: ""}); err == nil {
		t.Error("expected error without api key")
	}

	adapter, err := NewAdapter(Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewAdapter: %v", err)
	}
	if adapter == nil {
		t.Fatal("expected an adapter")
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(Config{AddPunctuation: true, RemoveFillerWords: true})
	if !strings.Contains(prompt, "Add proper punctuation") {
		t.Error("punctuation task missing")
	}
	if !strings.Contains(prompt, "filler words") {
		t.Error("filler word task missing")
	}
	if strings.Contains(prompt, "grammar") {
		t.Error("grammar task should not be present when disabled")
	}
}

func TestBuildSystemPromptDefaultsToGeneralCleanup(t *testing.T) {
	prompt := BuildSystemPrompt(Config{})
	if !strings.Contains(prompt, "Clean up the text while preserving meaning") {
		t.Error("expected general cleanup task when nothing is enabled")
	}
}
