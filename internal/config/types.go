package config

import "time"

type Config struct {
	Capture     CaptureConfig     `toml:"capture"`
	Recognition RecognitionConfig `toml:"recognition"`
	Credentials CredentialsConfig `toml:"credentials"`
	Polish      PolishConfig      `toml:"polish"`
	Output      OutputConfig      `toml:"output"`
}

type CaptureConfig struct {
	SampleRate      int           `toml:"sample_rate"`
	Channels        int           `toml:"channels"`
	Format          string        `toml:"format"`
	BufferSize      int           `toml:"buffer_size"`
	Device          string        `toml:"device"`
	SpeechTimeout   time.Duration `toml:"speech_timeout"`
	MaxDuration     time.Duration `toml:"max_duration"`
	SilenceDuration time.Duration `toml:"silence_duration"`
	EnergyThreshold float64       `toml:"energy_threshold"`
}

type RecognitionConfig struct {
	Provider string `toml:"provider"`
	Language string `toml:"language"`
}

// CredentialsConfig holds per-provider API keys. Every field may be left
// empty, in which case the matching environment variable is used instead.
type CredentialsConfig struct {
	WitKey            string `toml:"wit_key"`
	BingKey           string `toml:"bing_key"`
	HoundifyClientID  string `toml:"houndify_client_id"`
	HoundifyClientKey string `toml:"houndify_client_key"`
}

// PolishConfig configures the optional transcript post-processing phase.
type PolishConfig struct {
	Enabled           bool   `toml:"enabled"`
	APIKey            string `toml:"api_key"`
	Model             string `toml:"model"`
	AddPunctuation    bool   `toml:"add_punctuation"`
	FixGrammar        bool   `toml:"fix_grammar"`
	RemoveFillerWords bool   `toml:"remove_filler_words"`
}

type OutputConfig struct {
	Directory string `toml:"directory"`
}
