// Package capture records microphone audio through the PipeWire capture tool
// and blocks until speech has been heard and finished, or a timeout elapses.
package capture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
	"time"

	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/recognizer"
)

type Config struct {
	SampleRate int
	Channels   int
	Format     string
	BufferSize int
	Device     string
	// SpeechTimeout bounds how long to wait for speech to begin.
	SpeechTimeout time.Duration
	// MaxDuration bounds the whole recording.
	MaxDuration time.Duration
	// SilenceDuration of trailing quiet ends the recording.
	SilenceDuration time.Duration
	// EnergyThreshold is the normalized RMS level that counts as speech.
	EnergyThreshold float64
}

func DefaultConfig() Config {
	return Config{
		SampleRate:      audio.DefaultSampleRate,
		Channels:        audio.DefaultChannels,
		Format:          "s16",
		BufferSize:      4096,
		Device:          "",
		SpeechTimeout:   10 * time.Second,
		MaxDuration:     time.Minute,
		SilenceDuration: 1500 * time.Millisecond,
		EnergyThreshold: 0.015,
	}
}

// captureSlack pads the wall-clock guard so it only fires when the recorder
// has genuinely stalled, never during a legitimate capture.
var captureSlack = 2 * time.Second

type Recorder struct {
	config Config
}

func NewRecorder(config Config) *Recorder {
	return &Recorder{config: config}
}

func NewDefaultRecorder() *Recorder { return NewRecorder(DefaultConfig()) }

// Capture blocks until an utterance has been recorded or a timeout elapses.
// All failures are returned as taxonomy errors: recognizer.ErrNoSpeech when
// nothing was heard, a TransportError when the capture tool cannot run.
func (r *Recorder) Capture(ctx context.Context) (*audio.Buffer, error) {
	if err := r.validateConfig(); err != nil {
		return nil, err
	}

	path, err := exec.LookPath(deps.PwRecordBinary)
	if err != nil {
		return nil, &recognizer.TransportError{Err: fmt.Errorf("%s not found: %w (install pipewire-tools)", deps.PwRecordBinary, err)}
	}

	// The gate's timers advance on bytes read, so a recorder that produces
	// no data would block the read forever. The wall-clock deadline covers
	// the longest legitimate capture and unblocks the read by killing the
	// child.
	deadline := r.config.SpeechTimeout + r.config.MaxDuration + captureSlack
	captureCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	cmd := exec.CommandContext(captureCtx, path, r.buildArgs()...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &recognizer.TransportError{Err: fmt.Errorf("create stdout pipe: %w", err)}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &recognizer.TransportError{Err: fmt.Errorf("create stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return nil, &recognizer.TransportError{Err: fmt.Errorf("start %s: %w", deps.PwRecordBinary, err)}
	}
	// Ensure the child is reaped on every path.
	defer func() {
		cancel()
		_ = cmd.Wait()
	}()

	// Log stderr lines to aid diagnostics.
	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			log.Printf("capture stderr: %s", scanner.Text())
		}
	}()

	lst := newListener(r.config)
	buffer := make([]byte, r.config.BufferSize)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n, readErr := stdout.Read(buffer)
		if n > 0 {
			switch lst.feed(buffer[:n]) {
			case listenDone:
				log.Printf("capture: recorded %v of speech", lst.buffer().Duration())
				return lst.buffer(), nil
			case listenTimedOut:
				return nil, recognizer.ErrNoSpeech
			}
		}

		if readErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if captureCtx.Err() != nil {
				// the guard fired, not the caller
				if lst.heardSpeech() {
					return lst.buffer(), nil
				}
				return nil, recognizer.ErrNoSpeech
			}
			if errors.Is(readErr, io.EOF) {
				// pw-record exited underneath us
				if lst.heardSpeech() {
					return lst.buffer(), nil
				}
				return nil, &recognizer.TransportError{Err: fmt.Errorf("%s exited early", deps.PwRecordBinary)}
			}
			return nil, &recognizer.TransportError{Err: fmt.Errorf("read audio: %w", readErr)}
		}
	}
}

func (r *Recorder) buildArgs() []string {
	args := []string{
		"--format", r.config.Format,
		"--rate", strconv.Itoa(r.config.SampleRate),
		"--channels", strconv.Itoa(r.config.Channels),
		"-", // stdout
	}
	if r.config.Device != "" {
		args = append(args, "--target", r.config.Device)
	}
	return args
}

func (r *Recorder) validateConfig() error {
	if r.config.SampleRate <= 0 {
		return fmt.Errorf("invalid SampleRate: %d", r.config.SampleRate)
	}
	if r.config.Channels <= 0 {
		return fmt.Errorf("invalid Channels: %d", r.config.Channels)
	}
	if r.config.BufferSize <= 0 {
		return fmt.Errorf("invalid BufferSize: %d", r.config.BufferSize)
	}
	if r.config.Format == "" {
		return fmt.Errorf("invalid Format: empty")
	}
	if r.config.SpeechTimeout <= 0 {
		return fmt.Errorf("invalid SpeechTimeout: %v", r.config.SpeechTimeout)
	}
	if r.config.MaxDuration <= 0 {
		return fmt.Errorf("invalid MaxDuration: %v", r.config.MaxDuration)
	}
	if r.config.SilenceDuration <= 0 {
		return fmt.Errorf("invalid SilenceDuration: %v", r.config.SilenceDuration)
	}
	if r.config.EnergyThreshold <= 0 || r.config.EnergyThreshold >= 1 {
		return fmt.Errorf("invalid EnergyThreshold: %f", r.config.EnergyThreshold)
	}
	return nil
}
