package main

import (
	"testing"

	"github.com/voxscribe/voxscribe/internal/config"
)

func TestApplyFlagsOverridesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := &transcribeFlags{provider: "sphinx", language: "fr-FR"}

	if err := applyFlags(cfg, flags); err != nil {
		t.Fatalf("applyFlags() error: %v", err)
	}
	if cfg.Recognition.Provider != "sphinx" {
		t.Errorf("provider = %q, want sphinx", cfg.Recognition.Provider)
	}
	if cfg.Recognition.Language != "fr-FR" {
		t.Errorf("language = %q, want fr-FR", cfg.Recognition.Language)
	}
}

func TestApplyFlagsKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := applyFlags(cfg, &transcribeFlags{}); err != nil {
		t.Fatalf("applyFlags() error: %v", err)
	}
	if cfg.Recognition.Provider != "google" {
		t.Errorf("provider = %q, want google", cfg.Recognition.Provider)
	}
}

func TestApplyFlagsRejectsUnknownProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := applyFlags(cfg, &transcribeFlags{provider: "dragon"}); err == nil {
		t.Fatal("unknown provider should be rejected")
	}
}

func TestRootCommandWiring(t *testing.T) {
	want := []string{"listen", "transcribe", "interactive", "configure", "doctor", "providers", "languages", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
