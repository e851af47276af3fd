package config

import (
	"github.com/voxscribe/voxscribe/internal/capture"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/pipeline"
	"github.com/voxscribe/voxscribe/internal/polish"
	"github.com/voxscribe/voxscribe/internal/provider"
	"github.com/voxscribe/voxscribe/internal/recognizer"
)

func (c *Config) ToCaptureConfig() capture.Config {
	return capture.Config{
		SampleRate:      c.Capture.SampleRate,
		Channels:        c.Capture.Channels,
		Format:          c.Capture.Format,
		BufferSize:      c.Capture.BufferSize,
		Device:          c.Capture.Device,
		SpeechTimeout:   c.Capture.SpeechTimeout,
		MaxDuration:     c.Capture.MaxDuration,
		SilenceDuration: c.Capture.SilenceDuration,
		EnergyThreshold: c.Capture.EnergyThreshold,
	}
}

func (c *Config) ToRecognizerConfig() recognizer.Config {
	return recognizer.Config{
		Credentials: recognizer.Credentials{
			WitKey:            c.Credentials.WitKey,
			BingKey:           c.Credentials.BingKey,
			HoundifyClientID:  c.Credentials.HoundifyClientID,
			HoundifyClientKey: c.Credentials.HoundifyClientKey,
		},
	}
}

func (c *Config) ToPolishConfig() polish.Config {
	return polish.Config{
		Enabled:           c.Polish.Enabled,
		APIKey:            c.resolvePolishAPIKey(),
		Model:             c.Polish.Model,
		AddPunctuation:    c.Polish.AddPunctuation,
		FixGrammar:        c.Polish.FixGrammar,
		RemoveFillerWords: c.Polish.RemoveFillerWords,
	}
}

// ToPipelineConfig assembles the full pipeline configuration. The language
// falls back to the default when unset.
func (c *Config) ToPipelineConfig() pipeline.Config {
	lang := language.Tag(c.Recognition.Language)
	if lang == "" {
		lang = language.Default
	}

	return pipeline.Config{
		Provider:   provider.ID(c.Recognition.Provider),
		Language:   lang,
		Capture:    c.ToCaptureConfig(),
		Recognizer: c.ToRecognizerConfig(),
		Polish:     c.ToPolishConfig(),
	}
}

// OutputDir returns where transcripts are saved. Empty means the current
// directory.
func (c *Config) OutputDir() string {
	if c.Output.Directory != "" {
		return c.Output.Directory
	}
	return "."
}
