package recognizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/provider"
)

func TestNormalizeNil(t *testing.T) {
	if Normalize(provider.Google, nil) != nil {
		t.Error("nil error should normalize to nil")
	}
}

func TestNormalizeKinds(t *testing.T) {
	tests := []struct {
		name string
		id   provider.ID
		err  error
		want Kind
	}{
		{"no speech", provider.Google, ErrNoSpeech, KindNoSpeech},
		{"wrapped no speech", provider.Google, fmt.Errorf("listen: %w", ErrNoSpeech), KindNoSpeech},
		{"unintelligible", provider.Sphinx, ErrUnintelligible, KindUnintelligible},
		{"missing ffmpeg", "", &DependencyError{Binary: deps.FFmpegBinary, Err: errors.New("not found")}, KindMissingDependency},
		{"missing sphinx", provider.Sphinx, &DependencyError{Binary: deps.SphinxBinary, Err: errors.New("not found")}, KindMissingDependency},
		{"decode", "", &DecodeError{Detail: "bad mp3"}, KindDecode},
		{"transport", provider.Google, &TransportError{Provider: provider.Google, Err: errors.New("conn refused")}, KindTransport},
		{"deadline", provider.Google, context.DeadlineExceeded, KindTransport},
		{"unexpected", provider.Google, errors.New("boom"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Normalize(tt.id, tt.err)
			if f == nil {
				t.Fatal("expected a failure")
			}
			if f.Kind != tt.want {
				t.Errorf("expected kind %s, got %s", tt.want, f.Kind)
			}
			if f.Message == "" {
				t.Error("failure must carry a user-facing message")
			}
		})
	}
}

func TestNormalizeMessagesAreDistinct(t *testing.T) {
	failures := []*Failure{
		Normalize(provider.Google, ErrNoSpeech),
		Normalize(provider.Google, ErrUnintelligible),
		Normalize(provider.Google, &TransportError{Provider: provider.Google, Err: errors.New("x")}),
		Normalize("", &DependencyError{Binary: deps.FFmpegBinary, Err: errors.New("x")}),
		Normalize("", &DecodeError{Detail: "x"}),
		Normalize(provider.Google, errors.New("x")),
	}

	seen := map[string]Kind{}
	for _, f := range failures {
		if prev, dup := seen[f.Message]; dup {
			t.Errorf("kinds %s and %s share message %q", prev, f.Kind, f.Message)
		}
		seen[f.Message] = f.Kind
	}
}

func TestNormalizeWitBingTransportMentionsKey(t *testing.T) {
	// wit and bing cannot tell a bad key from a missing one; a failed
	// request surfaces as a credentials problem
	for _, id := range []provider.ID{provider.Wit, provider.Bing} {
		f := Normalize(id, &TransportError{Provider: id, Err: errors.New("status 401")})
		if f.Kind != KindTransport {
			t.Errorf("%s: expected transport kind, got %s", id, f.Kind)
		}
		if !strings.Contains(f.Message, "API key") {
			t.Errorf("%s: message should point at the API key, got %q", id, f.Message)
		}
	}

	// other providers keep the underlying message
	f := Normalize(provider.Google, &TransportError{Provider: provider.Google, Err: errors.New("conn refused")})
	if !strings.Contains(f.Message, "conn refused") {
		t.Errorf("google transport message should carry the cause, got %q", f.Message)
	}
}

func TestNormalizeMicrophoneTransport(t *testing.T) {
	f := Normalize("", &TransportError{Err: errors.New("pw-record exited")})
	if f.Kind != KindTransport {
		t.Errorf("expected transport, got %s", f.Kind)
	}
	if !strings.Contains(f.Message, "microphone") {
		t.Errorf("expected microphone message, got %q", f.Message)
	}
}

func TestNormalizePassThrough(t *testing.T) {
	orig := &Failure{Kind: KindMissingCredentials, Provider: provider.Wit, Message: "missing"}
	if got := Normalize(provider.Wit, orig); got != orig {
		t.Error("already normalized failures must pass through unchanged")
	}
}

func TestFailureImplementsError(t *testing.T) {
	var err error = &Failure{Kind: KindTransport, Message: "down"}
	if err.Error() != "down" {
		t.Errorf("unexpected error text %q", err.Error())
	}
}
