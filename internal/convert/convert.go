// Package convert turns compressed audio uploads into recognizer-ready PCM
// buffers by shelling out to ffmpeg.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/recognizer"
)

// Converter transcodes MP3 bytes to 16 kHz mono s16le PCM.
type Converter struct {
	// lookPath is swapped in tests to simulate a missing ffmpeg.
	lookPath func(string) (string, error)
	// tempDir overrides the system temp directory in tests.
	tempDir string
}

// New returns a Converter using the host's PATH and temp directory.
func New() *Converter {
	return &Converter{
		lookPath: exec.LookPath,
		tempDir:  os.TempDir(),
	}
}

// ToBuffer decodes raw MP3 bytes into an in-memory PCM buffer.
//
// Both intermediate files live under unique per-request names and are removed
// by deferred cleanup on every exit path - normal return, probe failure,
// decode failure or context cancellation.
func (c *Converter) ToBuffer(ctx context.Context, mp3 []byte) (*audio.Buffer, error) {
	// Probe first so a missing tool surfaces as its own failure kind
	// instead of an opaque decode error.
	ffmpegPath, err := c.lookPath(deps.FFmpegBinary)
	if err != nil {
		return nil, &recognizer.DependencyError{Binary: deps.FFmpegBinary, Err: err}
	}

	id := uuid.NewString()
	inPath := filepath.Join(c.tempDir, fmt.Sprintf("voxscribe_%s.mp3", id))
	outPath := filepath.Join(c.tempDir, fmt.Sprintf("voxscribe_%s.wav", id))

	if err := os.WriteFile(inPath, mp3, 0600); err != nil {
		return nil, fmt.Errorf("write temp mp3: %w", err)
	}
	defer os.Remove(inPath)
	// ffmpeg may leave a partial output behind on failure; remove it
	// unconditionally as well.
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, ffmpegPath,
		"-hide_banner", "-loglevel", "error",
		"-y",
		"-i", inPath,
		"-ar", strconv.Itoa(audio.DefaultSampleRate),
		"-ac", strconv.Itoa(audio.DefaultChannels),
		"-f", "wav",
		outPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, &recognizer.DecodeError{Detail: detail, Err: err}
	}

	file, err := os.Open(outPath)
	if err != nil {
		return nil, fmt.Errorf("open converted wav: %w", err)
	}
	defer file.Close()

	buf, err := audio.DecodeWAV(file)
	if err != nil {
		return nil, &recognizer.DecodeError{Detail: "converted wav unreadable", Err: err}
	}

	log.Printf("convert: decoded %d mp3 bytes to %v of pcm", len(mp3), buf.Duration())
	return buf, nil
}
