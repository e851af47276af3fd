package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	voxscribeDir := filepath.Join(configDir, "voxscribe")
	if err := os.MkdirAll(voxscribeDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(voxscribeDir, "config.toml"), nil
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Config: no config file found at %s, creating with defaults", configPath)
		if err := SaveDefaultConfig(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		log.Printf("Config: default configuration created successfully")
		return Load() // Recursively load the config, now file will exist
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	log.Printf("Config: loading configuration from %s", configPath)
	config, err := LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

// LoadFile parses the TOML configuration at path without touching the
// default config location.
func LoadFile(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if config.Polish.Enabled {
		config.applyPolishDefaults()
	}

	return &config, nil
}

// Save writes the configuration to the default location.
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func SaveDefaultConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	configContent := `# Voxscribe Configuration
# This file is automatically generated with defaults.
# Edit values as needed - changes are applied immediately in interactive mode.

# Microphone Capture Configuration
[capture]
  sample_rate = 16000          # Audio sample rate in Hz (16000 recommended for speech)
  channels = 1                 # Number of audio channels (1 = mono, 2 = stereo)
  format = "s16"               # Audio format (s16 = 16-bit signed integers)
  buffer_size = 4096           # Internal read buffer size in bytes
  device = ""                  # PipeWire audio device (empty = use default microphone)
  speech_timeout = "10s"       # Give up if no speech is heard within this window
  max_duration = "1m"          # Hard cap on one recording
  silence_duration = "1500ms"  # Trailing quiet that ends the recording
  energy_threshold = 0.015     # Normalized RMS level that counts as speech

# Speech Recognition Configuration
[recognition]
  provider = "google"          # Recognition service ("google", "sphinx", "wit", "bing", "houndify")
  language = "en-US"           # BCP-47 language tag (ignored by sphinx)

# Provider Credentials
# Keys left empty fall back to environment variables:
# WIT_AI_KEY, BING_KEY, HOUNDIFY_CLIENT_ID, HOUNDIFY_CLIENT_KEY
[credentials]
  wit_key = ""
  bing_key = ""
  houndify_client_id = ""
  houndify_client_key = ""

# Transcript Polish Configuration (optional OpenAI post-processing)
[polish]
  enabled = false              # Clean up the transcript with an LLM pass
  api_key = ""                 # OpenAI API key (or set OPENAI_API_KEY environment variable)
  model = "gpt-4o-mini"        # Chat model used for cleanup
  add_punctuation = true
  fix_grammar = true
  remove_filler_words = true

# Transcript Output Configuration
[output]
  directory = ""               # Where transcripts are saved (empty = current directory)

# Provider notes:
# - "google" and "sphinx" need no credentials; sphinx requires the
#   pocketsphinx_continuous binary on PATH and only handles US English.
# - "wit" and "bing" need a single API key; "houndify" needs a client
#   id and client key pair.
`

	if _, err := file.WriteString(configContent); err != nil {
		return fmt.Errorf("failed to write config content: %w", err)
	}

	return nil
}
