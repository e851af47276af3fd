package recognizer

import (
	"errors"
	"fmt"

	"github.com/voxscribe/voxscribe/internal/provider"
)

// Sentinel outcomes shared by the capture, convert and adapter layers.
var (
	// ErrNoSpeech means no speech was detected before the listen timeout.
	ErrNoSpeech = errors.New("no speech detected")
	// ErrUnintelligible means speech was present but produced no transcript.
	ErrUnintelligible = errors.New("could not understand audio")
)

// DependencyError reports a missing external tool.
type DependencyError struct {
	Binary string
	Err    error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Binary, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}

// DecodeError reports malformed or corrupt input audio.
type DecodeError struct {
	Detail string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("decode audio: %s", e.Detail)
	}
	return fmt.Sprintf("decode audio: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError reports a failed request to a provider or audio source.
type TransportError struct {
	Provider provider.ID // empty for the microphone transport
	Err      error
}

func (e *TransportError) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
