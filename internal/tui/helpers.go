package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/voxscribe/voxscribe/internal/config"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// providerOptions builds the select options for the provider menu, marking
// providers whose credentials are missing.
func providerOptions(cfg *config.Config) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(provider.List()))
	for _, spec := range provider.List() {
		label := spec.Label
		switch spec.Credentials {
		case provider.CredentialsNone:
			label += " (no key needed)"
		default:
			if !credentialsPresent(cfg, spec.ID) {
				label += " (key missing)"
			}
		}
		options = append(options, huh.NewOption(label, string(spec.ID)))
	}
	return options
}

func languageOptions() []huh.Option[string] {
	langs := language.List()
	options := make([]huh.Option[string], 0, len(langs))
	for _, l := range langs {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", l.Name, l.Tag), string(l.Tag)))
	}
	return options
}

// credentialsPresent reports whether the provider's credentials resolve from
// the config or the environment.
func credentialsPresent(cfg *config.Config, id provider.ID) bool {
	switch id {
	case provider.Wit, provider.Bing:
		return cfg.ResolveAPIKey(id) != ""
	case provider.Houndify:
		clientID, clientKey := cfg.ResolveKeyPair()
		return clientID != "" && clientKey != ""
	}
	return true
}

func formatProviderLabel(cfg *config.Config) string {
	id := provider.ID(cfg.Recognition.Provider)
	if !provider.IsValid(id) {
		return "Provider: not set"
	}
	return fmt.Sprintf("Provider: %s", provider.GetSpec(id).Label)
}

func formatLanguageLabel(cfg *config.Config) string {
	lang, ok := language.FromTag(language.Tag(cfg.Recognition.Language))
	if !ok {
		return fmt.Sprintf("Language: %s (default)", language.Default)
	}
	return fmt.Sprintf("Language: %s (%s)", lang.Name, lang.Tag)
}

func formatPolishLabel(cfg *config.Config) string {
	if !cfg.Polish.Enabled {
		return "Transcript Polish: off"
	}
	return fmt.Sprintf("Transcript Polish: on (%s)", cfg.Polish.Model)
}

func formatOutputLabel(cfg *config.Config) string {
	if cfg.Output.Directory == "" {
		return "Output: current directory"
	}
	return fmt.Sprintf("Output: %s", cfg.Output.Directory)
}
