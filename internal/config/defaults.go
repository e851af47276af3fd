package config

import (
	"time"

	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
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
			Provider: string(provider.Google),
			Language: string(language.Default),
		},
		Polish: PolishConfig{
			Enabled: false,
		},
		Output: OutputConfig{
			Directory: "",
		},
	}
}

// applyPolishDefaults fills in the polish options when the user enabled the
// phase without picking any.
func (c *Config) applyPolishDefaults() {
	p := &c.Polish
	if !p.AddPunctuation && !p.FixGrammar && !p.RemoveFillerWords {
		p.AddPunctuation = true
		p.FixGrammar = true
		p.RemoveFillerWords = true
	}
}
