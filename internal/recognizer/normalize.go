package recognizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/provider"
)

// Normalize maps any error from the capture, convert or adapter layers onto
// the closed failure taxonomy. id is the provider that was (or would have
// been) dispatched to; it may be empty for pre-dispatch failures.
func Normalize(id provider.ID, err error) *Failure {
	if err == nil {
		return nil
	}

	// Already normalized failures pass through unchanged.
	var failure *Failure
	if errors.As(err, &failure) {
		return failure
	}

	if errors.Is(err, ErrNoSpeech) {
		return &Failure{
			Kind:     KindNoSpeech,
			Provider: id,
			Message:  "No speech detected. Please try speaking again.",
		}
	}

	if errors.Is(err, ErrUnintelligible) {
		return &Failure{
			Kind:     KindUnintelligible,
			Provider: id,
			Message:  "Sorry, I did not understand what you said. Please try speaking more clearly.",
		}
	}

	var depErr *DependencyError
	if errors.As(err, &depErr) {
		msg := fmt.Sprintf("Error: %s is not installed or not on PATH.", depErr.Binary)
		if depErr.Binary == deps.FFmpegBinary {
			msg = "Error: FFmpeg is not installed. Please install FFmpeg from: https://ffmpeg.org/download.html"
		}
		return &Failure{
			Kind:     KindMissingDependency,
			Provider: id,
			Message:  msg,
		}
	}

	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return &Failure{
			Kind:     KindDecode,
			Provider: id,
			Message:  fmt.Sprintf("Error processing audio file: %v", decErr),
		}
	}

	var transErr *TransportError
	if errors.As(err, &transErr) {
		return normalizeTransport(id, transErr)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Failure{
			Kind:     KindTransport,
			Provider: id,
			Message:  fmt.Sprintf("Could not request results from %s service; request timed out", serviceLabel(id)),
		}
	}

	return &Failure{
		Kind:     KindUnexpected,
		Provider: id,
		Message:  fmt.Sprintf("An unexpected error occurred during transcription: %v", err),
	}
}

// normalizeTransport folds a request failure into the taxonomy. Wit and bing
// cannot distinguish a bad key from a missing one, so their transport
// failures surface as a credentials problem rather than an opaque error.
func normalizeTransport(id provider.ID, err *TransportError) *Failure {
	if err.Provider == "" && id == "" {
		return &Failure{
			Kind:    KindTransport,
			Message: fmt.Sprintf("Could not request results from microphone; %v", err.Err),
		}
	}

	switch id {
	case provider.Wit, provider.Bing:
		return &Failure{
			Kind:     KindTransport,
			Provider: id,
			Message:  fmt.Sprintf("Could not request results from %s service. Please check your API key.", serviceLabel(id)),
		}
	default:
		return &Failure{
			Kind:     KindTransport,
			Provider: id,
			Message:  fmt.Sprintf("Could not request results from %s service; %v", serviceLabel(id), err.Err),
		}
	}
}

func serviceLabel(id provider.ID) string {
	if provider.IsValid(id) {
		return provider.GetSpec(id).Label
	}
	return string(id)
}
