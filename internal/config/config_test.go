package config

import (
	"strings"
	"testing"
	"time"

	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
	"github.com/voxscribe/voxscribe/internal/testutil"
)

// createTestConfig returns a valid configuration for testing
func createTestConfig() *Config {
	return &Config{
		Capture: CaptureConfig{
			SampleRate:      16000,
			Channels:        1,
			Format:          "s16",
			BufferSize:      4096,
			Device:          "",
			SpeechTimeout:   10 * time.Second,
			MaxDuration:     time.Minute,
			SilenceDuration: 1500 * time.Millisecond,
			EnergyThreshold: 0.015,
		},
		Recognition: RecognitionConfig{
			Provider: "google",
			Language: "en-US",
		},
		Output: OutputConfig{Directory: ""},
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateCapture(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero sample rate", func(c *Config) { c.Capture.SampleRate = 0 }, "sample_rate"},
		{"zero channels", func(c *Config) { c.Capture.Channels = 0 }, "channels"},
		{"zero buffer size", func(c *Config) { c.Capture.BufferSize = 0 }, "buffer_size"},
		{"empty format", func(c *Config) { c.Capture.Format = "" }, "format"},
		{"zero speech timeout", func(c *Config) { c.Capture.SpeechTimeout = 0 }, "speech_timeout"},
		{"zero max duration", func(c *Config) { c.Capture.MaxDuration = 0 }, "max_duration"},
		{"zero silence duration", func(c *Config) { c.Capture.SilenceDuration = 0 }, "silence_duration"},
		{"threshold too high", func(c *Config) { c.Capture.EnergyThreshold = 1.5 }, "energy_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateProvider(t *testing.T) {
	cfg := createTestConfig()
	cfg.Recognition.Provider = "dragon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider should fail validation")
	}

	cfg.Recognition.Provider = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty provider should fail validation")
	}
}

func TestValidateLanguage(t *testing.T) {
	cfg := createTestConfig()
	cfg.Recognition.Language = "xx-XX"
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown language should fail validation")
	}

	// empty language is allowed and falls back to the default
	cfg.Recognition.Language = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty language should validate: %v", err)
	}
	if got := cfg.ToPipelineConfig().Language; got != language.Default {
		t.Errorf("empty language should resolve to %s, got %s", language.Default, got)
	}
}

func TestValidateCredentials(t *testing.T) {
	for _, env := range []string{
		provider.EnvWitKey, provider.EnvBingKey,
		provider.EnvHoundifyClientID, provider.EnvHoundifyClientKey,
	} {
		t.Setenv(env, "")
	}

	tests := []struct {
		name     string
		provider string
		mutate   func(*Config)
		wantErr  bool
	}{
		{"google needs nothing", "google", nil, false},
		{"sphinx needs nothing", "sphinx", nil, false},
		{"wit without key", "wit", nil, true},
		{"wit with config key", "wit", func(c *Config) { c.Credentials.WitKey = "k" }, false},
		{"bing without key", "bing", nil, true},
		{"bing with config key", "bing", func(c *Config) { c.Credentials.BingKey = "k" }, false},
		{"houndify without pair", "houndify", nil, true},
		{"houndify with half a pair", "houndify", func(c *Config) { c.Credentials.HoundifyClientID = "id" }, true},
		{"houndify with full pair", "houndify", func(c *Config) {
			c.Credentials.HoundifyClientID = "id"
			c.Credentials.HoundifyClientKey = "key"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			cfg.Recognition.Provider = tt.provider
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestValidateCredentialsFromEnv(t *testing.T) {
	cfg := createTestConfig()
	cfg.Recognition.Provider = "wit"

	t.Setenv(provider.EnvWitKey, "env-key")
	if err := cfg.Validate(); err != nil {
		t.Fatalf("env credential should satisfy validation: %v", err)
	}
}

func TestValidatePolish(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := createTestConfig()
	cfg.Polish = PolishConfig{Enabled: true, Model: "gpt-4o-mini"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("polish without API key should fail validation")
	}

	cfg.Polish.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("polish with API key should validate: %v", err)
	}

	cfg.Polish.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("polish without model should fail validation")
	}
}

func TestLoadFile(t *testing.T) {
	content := `
[capture]
  sample_rate = 8000
  channels = 2

[recognition]
  provider = "wit"
  language = "it-IT"

[credentials]
  wit_key = "secret"

[output]
  directory = "/tmp/transcripts"
`
	path := testutil.CreateTempConfigFile(t, content)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Capture.SampleRate != 8000 {
		t.Errorf("sample rate = %d, want 8000", cfg.Capture.SampleRate)
	}
	if cfg.Capture.Channels != 2 {
		t.Errorf("channels = %d, want 2", cfg.Capture.Channels)
	}
	if cfg.Recognition.Provider != "wit" {
		t.Errorf("provider = %q, want wit", cfg.Recognition.Provider)
	}
	if cfg.Recognition.Language != "it-IT" {
		t.Errorf("language = %q, want it-IT", cfg.Recognition.Language)
	}
	if cfg.Credentials.WitKey != "secret" {
		t.Errorf("wit key = %q, want secret", cfg.Credentials.WitKey)
	}
	if cfg.OutputDir() != "/tmp/transcripts" {
		t.Errorf("output dir = %q, want /tmp/transcripts", cfg.OutputDir())
	}
}

func TestLoadFileInvalidTOML(t *testing.T) {
	path := testutil.CreateTempConfigFile(t, "not [valid toml")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestPolishDefaultsApplied(t *testing.T) {
	content := `
[recognition]
  provider = "google"

[polish]
  enabled = true
  api_key = "sk-test"
  model = "gpt-4o-mini"
`
	path := testutil.CreateTempConfigFile(t, content)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if !cfg.Polish.AddPunctuation || !cfg.Polish.FixGrammar || !cfg.Polish.RemoveFillerWords {
		t.Error("enabling polish without options should turn all cleanup options on")
	}
}

func TestToPipelineConfig(t *testing.T) {
	cfg := createTestConfig()
	cfg.Recognition.Provider = "bing"
	cfg.Recognition.Language = "de-DE"
	cfg.Credentials.BingKey = "key"

	pc := cfg.ToPipelineConfig()
	if pc.Provider != provider.Bing {
		t.Errorf("provider = %s, want bing", pc.Provider)
	}
	if pc.Language != language.Tag("de-DE") {
		t.Errorf("language = %s, want de-DE", pc.Language)
	}
	if pc.Capture.SampleRate != cfg.Capture.SampleRate {
		t.Errorf("capture sample rate not carried over")
	}
	if pc.Recognizer.Credentials.BingKey != "key" {
		t.Errorf("bing key not carried over")
	}
}

func TestOutputDirDefaultsToCwd(t *testing.T) {
	cfg := createTestConfig()
	if got := cfg.OutputDir(); got != "." {
		t.Errorf("OutputDir() = %q, want .", got)
	}
}
