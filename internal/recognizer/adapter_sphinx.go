package recognizer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/deps"
	"github.com/voxscribe/voxscribe/internal/language"
)

// sphinxAdapter runs the local pocketsphinx decoder. It needs no credentials
// and no network; the language tag is ignored because the bundled model is
// English-only.
type sphinxAdapter struct{}

func (a *sphinxAdapter) Transcribe(ctx context.Context, buf *audio.Buffer, _ language.Tag) (string, error) {
	path, err := exec.LookPath(deps.SphinxBinary)
	if err != nil {
		return "", &DependencyError{Binary: deps.SphinxBinary, Err: err}
	}

	// pocketsphinx reads from a file, so the buffer goes through a uniquely
	// named temp WAV that is removed on every exit path.
	wavPath := tempWavPath()
	if err := os.WriteFile(wavPath, buf.EncodeWAV(), 0600); err != nil {
		return "", fmt.Errorf("write temp wav: %w", err)
	}
	defer os.Remove(wavPath)

	cmd := exec.CommandContext(ctx, path, "-infile", wavPath, "-logfn", os.DevNull)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("pocketsphinx failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	// The decoder prints one hypothesis line per utterance; silence yields
	// nothing at all.
	text := strings.TrimSpace(stdout.String())
	if text == "" {
		return "", ErrUnintelligible
	}
	return text, nil
}

// tempWavPath returns a unique per-request path in the system temp directory.
func tempWavPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("voxscribe_%s.wav", uuid.NewString()))
}
