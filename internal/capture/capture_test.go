package capture

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/recognizer"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SpeechTimeout = 500 * time.Millisecond
	cfg.MaxDuration = 2 * time.Second
	cfg.SilenceDuration = 200 * time.Millisecond
	return cfg
}

// chunk generates 100ms of s16le audio at the given amplitude.
func chunk(cfg Config, amplitude float64) []byte {
	samples := cfg.SampleRate / 10
	data := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		v := int16(amplitude * 32767 * math.Sin(2*math.Pi*float64(i)/40))
		binary.LittleEndian.PutUint16(data[i*2:], uint16(v))
	}
	return data
}

func TestListenerTimesOutOnSilence(t *testing.T) {
	cfg := testConfig()
	l := newListener(cfg)

	silence := chunk(cfg, 0)
	var state listenState
	for i := 0; i < 10; i++ {
		state = l.feed(silence)
		if state != listenContinue {
			break
		}
	}

	if state != listenTimedOut {
		t.Fatalf("expected timeout after sustained silence, got %d", state)
	}
	if l.heardSpeech() {
		t.Error("no speech was fed")
	}
}

func TestListenerEndsAfterTrailingSilence(t *testing.T) {
	cfg := testConfig()
	l := newListener(cfg)

	speech := chunk(cfg, 0.5)
	silence := chunk(cfg, 0)

	if state := l.feed(speech); state != listenContinue {
		t.Fatalf("speech chunk should continue, got %d", state)
	}
	l.feed(speech)

	var state listenState
	for i := 0; i < 5; i++ {
		state = l.feed(silence)
		if state != listenContinue {
			break
		}
	}
	if state != listenDone {
		t.Fatalf("expected done after trailing silence, got %d", state)
	}

	buf := l.buffer()
	if len(buf.PCM) == 0 {
		t.Error("collected buffer is empty")
	}
	if buf.SampleRate != cfg.SampleRate || buf.Channels != cfg.Channels {
		t.Error("buffer format does not match config")
	}
}

func TestListenerSpeechResetsSilenceCounter(t *testing.T) {
	cfg := testConfig()
	l := newListener(cfg)

	speech := chunk(cfg, 0.5)
	silence := chunk(cfg, 0)

	l.feed(speech)
	l.feed(silence) // 100ms of silence, under the 200ms cutoff
	if state := l.feed(speech); state != listenContinue {
		t.Fatalf("resumed speech should continue the capture, got %d", state)
	}
	if state := l.feed(silence); state != listenContinue {
		t.Fatalf("silence counter should have been reset, got %d", state)
	}
}

func TestListenerStopsAtMaxDuration(t *testing.T) {
	cfg := testConfig()
	cfg.MaxDuration = 300 * time.Millisecond
	l := newListener(cfg)

	speech := chunk(cfg, 0.5)
	var state listenState
	for i := 0; i < 10; i++ {
		state = l.feed(speech)
		if state != listenContinue {
			break
		}
	}
	if state != listenDone {
		t.Fatalf("expected done at max duration, got %d", state)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero sample rate", func(c *Config) { c.SampleRate = 0 }},
		{"zero channels", func(c *Config) { c.Channels = 0 }},
		{"zero buffer size", func(c *Config) { c.BufferSize = 0 }},
		{"empty format", func(c *Config) { c.Format = "" }},
		{"zero speech timeout", func(c *Config) { c.SpeechTimeout = 0 }},
		{"zero max duration", func(c *Config) { c.MaxDuration = 0 }},
		{"zero silence duration", func(c *Config) { c.SilenceDuration = 0 }},
		{"threshold too high", func(c *Config) { c.EnergyThreshold = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			r := NewRecorder(cfg)
			if err := r.validateConfig(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := NewDefaultRecorder().validateConfig(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestBuildArgs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Device = "alsa_input.pci-0000_00_1f.3"
	r := NewRecorder(cfg)

	args := r.buildArgs()
	want := map[string]bool{"--format": false, "--rate": false, "--channels": false, "--target": false}
	for _, arg := range args {
		if _, ok := want[arg]; ok {
			want[arg] = true
		}
	}
	for flag, seen := range want {
		if !seen {
			t.Errorf("missing %s in pw-record args", flag)
		}
	}
	if args[len(args)-3] != "-" && args[len(args)-1] != "-" {
		t.Error("output must go to stdout")
	}
}

func TestCaptureReturnsNoSpeechWhenRecorderEmitsNothing(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// Stub capture tool that starts but never writes a byte.
	dir := t.TempDir()
	stub := filepath.Join(dir, deps.PwRecordBinary)
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexec sleep 30\n"), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	oldSlack := captureSlack
	captureSlack = 100 * time.Millisecond
	defer func() { captureSlack = oldSlack }()

	cfg := DefaultConfig()
	cfg.SpeechTimeout = 50 * time.Millisecond
	cfg.MaxDuration = 50 * time.Millisecond

	type result struct {
		err error
	}
	done := make(chan result, 1)
	go func() {
		_, err := NewRecorder(cfg).Capture(context.Background())
		done <- result{err: err}
	}()

	select {
	case res := <-done:
		if !errors.Is(res.err, recognizer.ErrNoSpeech) {
			t.Fatalf("Capture() error = %v, want ErrNoSpeech", res.err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Capture did not return after the speech timeout")
	}
}

func TestCaptureHonorsCallerCancellation(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, deps.PwRecordBinary)
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nexec sleep 30\n"), 0755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := NewRecorder(DefaultConfig()).Capture(ctx)
		done <- err
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Capture() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Capture did not return after cancellation")
	}
}
