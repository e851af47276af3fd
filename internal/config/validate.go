package config

import (
	"fmt"
	"os"

	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
)

func (c *Config) Validate() error {
	// Capture
	if c.Capture.SampleRate <= 0 {
		return fmt.Errorf("invalid capture.sample_rate: %d", c.Capture.SampleRate)
	}
	if c.Capture.Channels <= 0 {
		return fmt.Errorf("invalid capture.channels: %d", c.Capture.Channels)
	}
	if c.Capture.BufferSize <= 0 {
		return fmt.Errorf("invalid capture.buffer_size: %d", c.Capture.BufferSize)
	}
	if c.Capture.Format == "" {
		return fmt.Errorf("invalid capture.format: empty")
	}
	if c.Capture.SpeechTimeout <= 0 {
		return fmt.Errorf("invalid capture.speech_timeout: %v", c.Capture.SpeechTimeout)
	}
	if c.Capture.MaxDuration <= 0 {
		return fmt.Errorf("invalid capture.max_duration: %v", c.Capture.MaxDuration)
	}
	if c.Capture.SilenceDuration <= 0 {
		return fmt.Errorf("invalid capture.silence_duration: %v", c.Capture.SilenceDuration)
	}
	if c.Capture.EnergyThreshold <= 0 || c.Capture.EnergyThreshold >= 1 {
		return fmt.Errorf("invalid capture.energy_threshold: %v (must be between 0 and 1)", c.Capture.EnergyThreshold)
	}

	// Recognition
	if c.Recognition.Provider == "" {
		return fmt.Errorf("invalid recognition.provider: empty")
	}
	id := provider.ID(c.Recognition.Provider)
	if !provider.IsValid(id) {
		return fmt.Errorf("invalid recognition.provider: %s (must be google, sphinx, wit, bing, or houndify)", c.Recognition.Provider)
	}
	if c.Recognition.Language != "" && !language.IsValid(language.Tag(c.Recognition.Language)) {
		return fmt.Errorf("invalid recognition.language: %s (use BCP-47 tags like 'en-US', 'es-ES', 'fr-FR')", c.Recognition.Language)
	}

	if err := c.validateCredentials(id); err != nil {
		return err
	}

	// Polish
	if c.Polish.Enabled {
		if c.Polish.Model == "" {
			return fmt.Errorf("polish.model required when polish.enabled = true")
		}
		if c.resolvePolishAPIKey() == "" {
			return fmt.Errorf("OpenAI API key required for polish: not found in config (polish.api_key) or environment variable (OPENAI_API_KEY)")
		}
	}

	return nil
}

// validateCredentials checks that the selected provider's credentials are
// available from the config or the environment.
func (c *Config) validateCredentials(id provider.ID) error {
	spec := provider.GetSpec(id)

	switch spec.Credentials {
	case provider.CredentialsNone:
		return nil

	case provider.CredentialsAPIKey:
		if c.ResolveAPIKey(id) == "" {
			return fmt.Errorf("%s API key required: not found in config (credentials) or environment variable (%s)", spec.Label, spec.EnvVars[0])
		}
		return nil

	case provider.CredentialsKeyPair:
		clientID, clientKey := c.ResolveKeyPair()
		if clientID == "" || clientKey == "" {
			return fmt.Errorf("%s credentials required: not found in config (credentials) or environment variables (%s, %s)", spec.Label, spec.EnvVars[0], spec.EnvVars[1])
		}
		return nil
	}

	return nil
}

// ResolveAPIKey returns the API key for a single-key provider, preferring the
// config value over the environment.
func (c *Config) ResolveAPIKey(id provider.ID) string {
	switch id {
	case provider.Wit:
		if c.Credentials.WitKey != "" {
			return c.Credentials.WitKey
		}
		return os.Getenv(provider.EnvWitKey)
	case provider.Bing:
		if c.Credentials.BingKey != "" {
			return c.Credentials.BingKey
		}
		return os.Getenv(provider.EnvBingKey)
	}
	return ""
}

// ResolveKeyPair returns the Houndify client id and key, preferring config
// values over the environment.
func (c *Config) ResolveKeyPair() (string, string) {
	clientID := c.Credentials.HoundifyClientID
	if clientID == "" {
		clientID = os.Getenv(provider.EnvHoundifyClientID)
	}
	clientKey := c.Credentials.HoundifyClientKey
	if clientKey == "" {
		clientKey = os.Getenv(provider.EnvHoundifyClientKey)
	}
	return clientID, clientKey
}

func (c *Config) resolvePolishAPIKey() string {
	if c.Polish.APIKey != "" {
		return c.Polish.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}
