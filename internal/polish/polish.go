// Package polish optionally cleans up raw transcripts with an LLM pass.
package polish

import (
	"context"
	"fmt"
)

// Adapter interface for transcript post-processing backends
type Adapter interface {
	Process(ctx context.Context, text string) (string, error)
}

// Config holds polish adapter configuration
type Config struct {
	Enabled           bool
	APIKey            string
	Model             string
	AddPunctuation    bool
	FixGrammar        bool
	RemoveFillerWords bool
}

// NewAdapter creates the post-processing adapter for the configuration.
func NewAdapter(cfg Config) (Adapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key required for transcript polish")
	}
	return NewOpenAIAdapter(cfg), nil
}
