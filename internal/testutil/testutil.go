// Package testutil provides shared fakes for pipeline and command tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/voxscribe/voxscribe/internal/audio"
	"github.com/voxscribe/voxscribe/internal/language"
	"github.com/voxscribe/voxscribe/internal/provider"
	"github.com/voxscribe/voxscribe/internal/recognizer"
)

// TestBuffer returns a small valid audio buffer.
func TestBuffer() *audio.Buffer {
	return &audio.Buffer{
		PCM:        make([]byte, 3200),
		SampleRate: audio.DefaultSampleRate,
		Channels:   audio.DefaultChannels,
	}
}

// CreateTempConfigFile creates a temporary config file for testing
func CreateTempConfigFile(t *testing.T, configContent string) string {
	t.Helper()

	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	err := os.WriteFile(configPath, []byte(configContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// MockRecorder implements pipeline.Recorder
type MockRecorder struct {
	Buffer *audio.Buffer
	Err    error

	Captures int
}

func (m *MockRecorder) Capture(ctx context.Context) (*audio.Buffer, error) {
	m.Captures++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Buffer, nil
}

// MockConverter implements pipeline.Converter
type MockConverter struct {
	Buffer *audio.Buffer
	Err    error

	Inputs [][]byte
}

func (m *MockConverter) ToBuffer(ctx context.Context, mp3 []byte) (*audio.Buffer, error) {
	m.Inputs = append(m.Inputs, mp3)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Buffer, nil
}

// MockEngine implements pipeline.Engine
type MockEngine struct {
	Result recognizer.Result

	Calls     int
	GotID     provider.ID
	GotLang   language.Tag
	GotBuffer *audio.Buffer
}

func (m *MockEngine) Recognize(ctx context.Context, buf *audio.Buffer, id provider.ID, lang language.Tag) recognizer.Result {
	m.Calls++
	m.GotID = id
	m.GotLang = lang
	m.GotBuffer = buf
	return m.Result
}

// MockPolisher implements polish.Adapter
type MockPolisher struct {
	Output string
	Err    error

	Inputs []string
}

func (m *MockPolisher) Process(ctx context.Context, text string) (string, error) {
	m.Inputs = append(m.Inputs, text)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Output, nil
}
