package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/voxscribe/voxscribe/internal/config"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// ConfigureResult holds the configuration result from the TUI
type ConfigureResult struct {
	Config    *config.Config
	Cancelled bool
}

// ConfigSection represents a configuration section
type ConfigSection string

const (
	SectionProvider    ConfigSection = "provider"
	SectionLanguage    ConfigSection = "language"
	SectionCredentials ConfigSection = "credentials"
	SectionPolish      ConfigSection = "polish"
	SectionCapture     ConfigSection = "capture"
	SectionOutput      ConfigSection = "output"
	SectionSaveExit    ConfigSection = "save_exit"
	SectionDiscardExit ConfigSection = "discard_exit"
)

// Run starts the TUI configuration menu
func Run(existing *config.Config) (*ConfigureResult, error) {
	cfg := existing
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	for {
		clearScreen()
		fmt.Println(Logo())
		fmt.Println()

		section, err := selectSection(cfg)
		if err != nil {
			return &ConfigureResult{Cancelled: true}, nil
		}

		switch section {
		case SectionSaveExit:
			if err := cfg.Validate(); err != nil {
				fmt.Println(StyleWarning.Render(fmt.Sprintf("Configuration warning: %v", err)))
				if !confirmSaveAnyway() {
					continue
				}
			}
			return &ConfigureResult{Config: cfg, Cancelled: false}, nil

		case SectionDiscardExit:
			return &ConfigureResult{Cancelled: true}, nil

		case SectionProvider:
			if err := editProvider(cfg); err != nil {
				continue
			}

		case SectionLanguage:
			if err := editLanguage(cfg); err != nil {
				continue
			}

		case SectionCredentials:
			if err := editCredentials(cfg); err != nil {
				continue
			}

		case SectionPolish:
			if err := editPolish(cfg); err != nil {
				continue
			}

		case SectionCapture:
			if err := editCapture(cfg); err != nil {
				continue
			}

		case SectionOutput:
			if err := editOutput(cfg); err != nil {
				continue
			}
		}
	}
}

func selectSection(cfg *config.Config) (ConfigSection, error) {
	options := []huh.Option[ConfigSection]{
		huh.NewOption(formatProviderLabel(cfg), SectionProvider),
		huh.NewOption(formatLanguageLabel(cfg), SectionLanguage),
		huh.NewOption("Provider Credentials", SectionCredentials),
		huh.NewOption(formatPolishLabel(cfg), SectionPolish),
		huh.NewOption("Microphone Settings", SectionCapture),
		huh.NewOption(formatOutputLabel(cfg), SectionOutput),
		huh.NewOption("Save & Exit", SectionSaveExit),
		huh.NewOption("Discard & Exit", SectionDiscardExit),
	}

	var selected ConfigSection
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[ConfigSection]().
				Title("Configuration Menu").
				Description("↑/↓ navigate • enter select • esc cancel").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	return selected, nil
}

func editProvider(cfg *config.Config) error {
	selected := cfg.Recognition.Provider
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recognition Provider").
				Description("Where your speech is sent for transcription").
				Options(providerOptions(cfg)...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Recognition.Provider = selected

	// walk straight into the key prompt when the chosen provider has none
	id := provider.ID(selected)
	if provider.GetSpec(id).Credentials != provider.CredentialsNone && !credentialsPresent(cfg, id) {
		return editCredentialsFor(cfg, id)
	}
	return nil
}

func editLanguage(cfg *config.Config) error {
	selected := cfg.Recognition.Language
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Recognition Language").
				Description("Ignored by Sphinx, which only handles US English").
				Options(languageOptions()...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Recognition.Language = selected
	return nil
}

func editCredentials(cfg *config.Config) error {
	options := []huh.Option[provider.ID]{}
	for _, spec := range provider.List() {
		if spec.Credentials == provider.CredentialsNone {
			continue
		}
		label := spec.Label
		switch {
		case spec.ID == provider.Wit && cfg.Credentials.WitKey != "":
			label += " (" + maskAPIKey(cfg.Credentials.WitKey) + ")"
		case spec.ID == provider.Bing && cfg.Credentials.BingKey != "":
			label += " (" + maskAPIKey(cfg.Credentials.BingKey) + ")"
		case credentialsPresent(cfg, spec.ID):
			label += " (configured)"
		}
		options = append(options, huh.NewOption(label, spec.ID))
	}

	var selected provider.ID
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[provider.ID]().
				Title("Provider Credentials").
				Description("Keys left empty fall back to environment variables").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	return editCredentialsFor(cfg, selected)
}

func editCredentialsFor(cfg *config.Config, id provider.ID) error {
	spec := provider.GetSpec(id)

	switch id {
	case provider.Wit:
		return promptAPIKey(spec.Label, spec.EnvVars[0], &cfg.Credentials.WitKey)
	case provider.Bing:
		return promptAPIKey(spec.Label, spec.EnvVars[0], &cfg.Credentials.BingKey)
	case provider.Houndify:
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Houndify Client ID").
					Description(fmt.Sprintf("Or set %s in your environment", spec.EnvVars[0])).
					Value(&cfg.Credentials.HoundifyClientID),
				huh.NewInput().
					Title("Houndify Client Key").
					Description(fmt.Sprintf("Or set %s in your environment", spec.EnvVars[1])).
					EchoMode(huh.EchoModePassword).
					Value(&cfg.Credentials.HoundifyClientKey),
			),
		).WithTheme(getTheme())
		return form.Run()
	}
	return nil
}

func promptAPIKey(label, envVar string, value *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s API Key", label)).
				Description(fmt.Sprintf("Or set %s in your environment", envVar)).
				EchoMode(huh.EchoModePassword).
				Value(value),
		),
	).WithTheme(getTheme())
	return form.Run()
}

func editPolish(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable Transcript Polish?").
				Description("Clean up transcripts with an OpenAI pass after recognition").
				Value(&cfg.Polish.Enabled),
		),
	).WithTheme(getTheme())
	if err := form.Run(); err != nil {
		return err
	}

	if !cfg.Polish.Enabled {
		return nil
	}

	if cfg.Polish.Model == "" {
		cfg.Polish.Model = "gpt-4o-mini"
	}

	form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("OpenAI API Key").
				Description("Or set OPENAI_API_KEY in your environment").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Polish.APIKey),
			huh.NewInput().
				Title("Model").
				Value(&cfg.Polish.Model),
			huh.NewConfirm().
				Title("Add punctuation?").
				Value(&cfg.Polish.AddPunctuation),
			huh.NewConfirm().
				Title("Fix grammar?").
				Value(&cfg.Polish.FixGrammar),
			huh.NewConfirm().
				Title("Remove filler words?").
				Value(&cfg.Polish.RemoveFillerWords),
		),
	).WithTheme(getTheme())
	return form.Run()
}

func editCapture(cfg *config.Config) error {
	speechTimeout := cfg.Capture.SpeechTimeout.String()
	maxDuration := cfg.Capture.MaxDuration.String()
	silenceDuration := cfg.Capture.SilenceDuration.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Microphone Device").
				Description("PipeWire device name, empty for the default microphone").
				Value(&cfg.Capture.Device),
			huh.NewInput().
				Title("Speech Timeout").
				Description("Give up if no speech is heard within this window (e.g. 10s)").
				Value(&speechTimeout).
				Validate(validateDuration),
			huh.NewInput().
				Title("Max Duration").
				Description("Hard cap on one recording (e.g. 1m)").
				Value(&maxDuration).
				Validate(validateDuration),
			huh.NewInput().
				Title("Silence Duration").
				Description("Trailing quiet that ends the recording (e.g. 1500ms)").
				Value(&silenceDuration).
				Validate(validateDuration),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	// validated above, so these parses cannot fail
	cfg.Capture.SpeechTimeout, _ = time.ParseDuration(speechTimeout)
	cfg.Capture.MaxDuration, _ = time.ParseDuration(maxDuration)
	cfg.Capture.SilenceDuration, _ = time.ParseDuration(silenceDuration)
	return nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration (use forms like 10s, 1m, 1500ms)")
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func editOutput(cfg *config.Config) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Transcript Directory").
				Description("Where transcripts are saved, empty for the current directory").
				Value(&cfg.Output.Directory),
		),
	).WithTheme(getTheme())
	return form.Run()
}

func confirmSaveAnyway() bool {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save anyway?").
				Value(&confirmed),
		),
	).WithTheme(getTheme())
	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}

// clearScreen clears the terminal screen
func clearScreen() {
	output := termenv.NewOutput(os.Stdout)
	output.ClearScreen()
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
